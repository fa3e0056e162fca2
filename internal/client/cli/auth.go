package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for credentials and authenticates against the backend.
// The password byte slice is securely wiped before returning.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		fmt.Printf("Sign-in failed: %s\n", err.Error())
		return err
	}

	fmt.Printf("Signed in as %s\n", user.Email)
	return nil
}

// SignUp prompts for a name, email, and password and creates a new account.
// A successful sign-up leaves the user signed in.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.SignUp(ctx, email, name, string(password))
	if err != nil {
		fmt.Printf("Sign-up failed: %s\n", err.Error())
		return err
	}

	fmt.Printf("Account created for %s\n", user.Email)
	return nil
}

// SignOut ends the session. Signing out while not signed in is harmless.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		fmt.Printf("Sign-out failed: %s\n", err.Error())
		return err
	}
	fmt.Println("Signed out")
	return nil
}

// WhoAmI prints the signed-in user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireAuthenticated("/profile") {
		return nil
	}

	user := a.auth.User()
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Role:  %s\n", user.Role)
	return nil
}

// Rename prompts for a new display name and applies it to the signed-in
// user's profile.
func (a *App) Rename(ctx context.Context) error {
	if !a.requireAuthenticated("/profile") {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter new display name", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.auth.UpdateUser(ctx, models.UserUpdate{Name: &name})
	if err != nil {
		fmt.Printf("Update failed: %s\n", err.Error())
		return err
	}
	if updated == nil {
		fmt.Println("Not signed in")
		return nil
	}

	fmt.Printf("Display name changed to %s\n", updated.Name)
	return nil
}

// Admin opens the admin area. Only admins get through; everyone else sees
// the decision the corresponding panel route would make.
func (a *App) Admin(ctx context.Context) error {
	if !a.requireAdmin("/admin") {
		return nil
	}

	fmt.Println("Admin area")
	fmt.Printf("Signed in as %s\n", a.auth.User().Email)
	return nil
}

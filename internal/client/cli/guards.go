package cli

import (
	"fmt"

	"github.com/dmitrijs2005/admingate/internal/client/guard"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// allowed interprets a guard decision for the terminal: Allow passes, any
// other outcome is printed the way a UI shell would act on it.
func allowed(d guard.Decision) bool {
	switch d.Action {
	case guard.Allow:
		return true
	case guard.Wait:
		fmt.Println("Loading...")
	case guard.Redirect:
		if d.Forbidden {
			fmt.Printf("Access denied, returning to %s\n", d.Target)
		} else {
			fmt.Printf("Sign in required, redirecting to %s\n", d.Target)
		}
	}
	return false
}

func (a *App) requireAuthenticated(location string) bool {
	return allowed(guard.RequireAuthenticated(a.auth, location))
}

func (a *App) requireAdmin(location string) bool {
	return allowed(guard.RequireRoles(a.auth, location, models.RoleAdmin))
}

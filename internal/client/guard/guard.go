// Package guard decides whether navigation to a route may proceed given the
// current authentication state. Decisions are values, not side effects: the
// caller (a UI shell or the CLI) interprets Wait, Allow, and Redirect.
package guard

import (
	"github.com/dmitrijs2005/admingate/internal/client/authctx"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// Routes the guards redirect to.
const (
	SignInRoute    = "/signin"
	DashboardRoute = "/dashboard"
)

// Action is the outcome category of a guard check.
type Action int

const (
	// Wait means auth state is still loading; render nothing and re-check
	// after hydration resolves.
	Wait Action = iota
	// Allow means navigation may proceed.
	Allow
	// Redirect means navigation must be replaced with Target.
	Redirect
)

// Decision is the result of a guard check.
//
// From carries the originally requested location on a redirect to the sign-in
// route, so a later sign-in can return the user where they were headed.
// Forbidden distinguishes "signed in but lacking the role" from "not signed
// in at all".
type Decision struct {
	Action    Action
	Target    string
	From      string
	Forbidden bool
}

func wait() Decision  { return Decision{Action: Wait} }
func allow() Decision { return Decision{Action: Allow} }

// RequireAuthenticated admits signed-in users and redirects everyone else to
// the sign-in route, preserving the attempted location.
func RequireAuthenticated(a *authctx.Context, location string) Decision {
	if a.IsLoading() {
		return wait()
	}
	if !a.IsAuthenticated() {
		return Decision{Action: Redirect, Target: SignInRoute, From: location}
	}
	return allow()
}

// RequireGuest admits anonymous users and redirects signed-in users to the
// dashboard. Used on the sign-in and sign-up routes.
func RequireGuest(a *authctx.Context) Decision {
	if a.IsLoading() {
		return wait()
	}
	if a.IsAuthenticated() {
		return Decision{Action: Redirect, Target: DashboardRoute}
	}
	return allow()
}

// RequireRoles admits signed-in users holding one of the given roles.
// Unauthenticated users are sent to sign-in; authenticated users with the
// wrong role are sent to the dashboard with Forbidden set.
func RequireRoles(a *authctx.Context, location string, roles ...models.Role) Decision {
	if a.IsLoading() {
		return wait()
	}

	user := a.User()
	if user == nil {
		return Decision{Action: Redirect, Target: SignInRoute, From: location}
	}

	for _, r := range roles {
		if user.Role == r {
			return allow()
		}
	}
	return Decision{Action: Redirect, Target: DashboardRoute, Forbidden: true}
}

// Package api implements the HTTP client for the AdminGate backend.
package api

import (
	"context"

	"github.com/dmitrijs2005/admingate/internal/models"
)

// Session is what a successful sign-in or sign-up yields: the authenticated
// user and an opaque token the client persists alongside it. The session
// cookie itself lives in the HTTP client's cookie jar.
type Session struct {
	User  *models.User
	Token string
}

// Client is the backend API surface the client-side code depends on.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, name, password string) (*Session, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, upd models.UserUpdate) (*models.User, error)
}

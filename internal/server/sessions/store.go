// Package sessions implements the server-side session store: an opaque
// session identifier bound to a user snapshot and an expiry.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/admingate/internal/models"
)

// Store manages sessions. The embedded user is a copy, not a live reference;
// profile updates must be propagated explicitly via UpdateUserSessions.
type Store interface {
	// Create stores a new session for user and returns its identifier.
	Create(ctx context.Context, user *models.User) (string, error)

	// Get returns the session's user if the identifier exists and the session
	// has not expired. An expired entry is deleted on read and reported as
	// absent (nil, nil); expired sessions are never returned as valid.
	Get(ctx context.Context, sessionID string) (*models.User, error)

	// Destroy removes the session. Removing an absent identifier is not an
	// error.
	Destroy(ctx context.Context, sessionID string) error

	// UpdateUserSessions replaces the user snapshot in every session that
	// belongs to userID.
	UpdateUserSessions(ctx context.Context, userID string, user *models.User) error
}

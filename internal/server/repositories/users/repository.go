// Package users stores accounts: the public user profile plus its password
// hash. Email uniqueness (case-insensitive) is enforced here, at creation
// and on email change.
package users

import (
	"context"

	"github.com/dmitrijs2005/admingate/internal/models"
)

type Repository interface {
	// Create inserts a new account. The email must already be lowercased by
	// the caller. Returns common.ErrEmailAlreadyInUse on a duplicate email.
	Create(ctx context.Context, user *models.User, passwordHash string) (*models.User, error)

	// GetByEmail returns the user and its password hash, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, string, error)

	// GetByID returns the user, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Update replaces the stored profile and password hash for user.ID.
	// Returns common.ErrEmailAlreadyInUse when the new email belongs to a
	// different account, common.ErrorNotFound when the user does not exist.
	Update(ctx context.Context, user *models.User, passwordHash string) (*models.User, error)
}

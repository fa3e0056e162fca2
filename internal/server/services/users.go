package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/models"
	"github.com/dmitrijs2005/admingate/internal/server/auth"
	"github.com/dmitrijs2005/admingate/internal/server/repositories/users"
	"github.com/dmitrijs2005/admingate/internal/server/sessions"
	"github.com/dmitrijs2005/admingate/internal/server/verifier"
)

// UserService provides account management:
//   - Register: create accounts, enforcing email uniqueness
//   - UpdateProfile: merge profile changes and propagate the new snapshot
//     to every active session of the user
//   - SeedAdmin: make sure the initial admin account exists
type UserService struct {
	repo          users.Repository
	sessions      sessions.Store
	jwtSecret     []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

func NewUserService(repo users.Repository, s sessions.Store, jwtSecret []byte, tokenValidity time.Duration, l logging.Logger) *UserService {
	return &UserService{
		repo:          repo,
		sessions:      s,
		jwtSecret:     jwtSecret,
		tokenValidity: tokenValidity,
		logger:        l.With("module", "user_service"),
	}
}

// Register creates a new account with the user role and returns it together
// with a fresh bearer token. A duplicate email yields
// common.ErrEmailAlreadyInUse.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	email = verifier.NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, "", common.ErrInvalidCredentials
	}
	if password == "" {
		return nil, "", common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, user, string(hash))
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyInUse) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(created.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	s.logger.Info(ctx, "registered", "user_id", created.ID, "email", created.Email)
	return created, token, nil
}

// UpdateProfile merges the non-nil fields of update into the stored account
// and replaces the user snapshot in all of the user's active sessions.
// A missing account yields common.ErrUserNotFound; an email change that
// collides with another account yields common.ErrEmailAlreadyInUse.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	_, hash, err := s.repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("error loading credentials: %w", err)
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		email := verifier.NormalizeEmail(*update.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, common.ErrInvalidCredentials
		}
		user.Email = email
	}
	if update.Password != nil {
		newHash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, common.ErrorInternal
		}
		hash = string(newHash)
	}
	user.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, user, hash)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyInUse) || errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	// Sessions hold copies, not references; push the new snapshot out.
	if err := s.sessions.UpdateUserSessions(ctx, userID, updated); err != nil {
		return nil, fmt.Errorf("error refreshing sessions: %w", err)
	}

	s.logger.Info(ctx, "profile updated", "user_id", updated.ID)
	return updated, nil
}

// SeedAdmin creates the initial admin account when it does not exist yet.
func (s *UserService) SeedAdmin(ctx context.Context, email, password string) error {
	email = verifier.NormalizeEmail(email)

	if _, _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return common.ErrorInternal
	}

	now := time.Now()
	_, err = s.repo.Create(ctx, &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      "Admin User",
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}, string(hash))
	if err != nil {
		return fmt.Errorf("error seeding admin: %w", err)
	}

	s.logger.Info(ctx, "admin account seeded", "email", email)
	return nil
}

// Package services contains server-side business logic. This file implements
// AuthService, which verifies credentials and drives the session lifecycle.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/models"
	"github.com/dmitrijs2005/admingate/internal/server/sessions"
	"github.com/dmitrijs2005/admingate/internal/server/verifier"
)

// AuthResult bundles what a successful sign-in produces: the account, the
// bearer token the client persists, and the server session identifier that
// goes into the cookie.
type AuthResult struct {
	User      *models.User
	Token     string
	SessionID string
}

// AuthService handles sign-in and sign-out:
//   - SignIn: verify credentials, then open a server session.
//   - SignOut: destroy a session; absent sessions are not an error.
type AuthService struct {
	verifier verifier.CredentialVerifier
	sessions sessions.Store
	logger   logging.Logger
}

func NewAuthService(v verifier.CredentialVerifier, s sessions.Store, l logging.Logger) *AuthService {
	return &AuthService{verifier: v, sessions: s, logger: l.With("module", "auth_service")}
}

// SignIn verifies the email/password pair and creates a session for the
// verified account. Verification failures pass through unchanged so callers
// can match common.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	user, token, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	s.logger.Info(ctx, "signed in", "user_id", user.ID, "role", user.Role)
	return &AuthResult{User: user, Token: token, SessionID: sessionID}, nil
}

// SignOut destroys the session. It is idempotent: signing out an unknown or
// already-destroyed session succeeds.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return fmt.Errorf("error destroying session: %w", err)
	}
	return nil
}

// Session resolves a session identifier to its user, or nil when the session
// is absent or expired.
func (s *AuthService) Session(ctx context.Context, sessionID string) (*models.User, error) {
	return s.sessions.Get(ctx, sessionID)
}

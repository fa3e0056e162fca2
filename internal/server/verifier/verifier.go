// Package verifier checks sign-in credentials. The capability is a single
// method so the mock policy and the user-store lookup are interchangeable
// without touching callers.
package verifier

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// CredentialVerifier validates an email/password pair and, on success,
// returns the account and a freshly generated bearer token. Failures are
// reported as common.ErrInvalidCredentials.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*models.User, string, error)
}

// NormalizeEmail lowercases and trims an email address the way every
// credential path must before comparing or storing it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkSyntax rejects empty passwords and syntactically invalid addresses
// before any policy runs.
func checkSyntax(email, password string) error {
	if password == "" {
		return common.ErrInvalidCredentials
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}

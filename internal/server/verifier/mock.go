package verifier

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// Mock accepts any valid email paired with a fixed shared secret. The
// configured admin email gets the admin role; everyone else is a regular
// user named after the local part of the address. It is a development
// stand-in for a real credential check, not a security mechanism.
type Mock struct {
	sharedSecret string
	adminEmail   string
}

func NewMock(sharedSecret, adminEmail string) *Mock {
	return &Mock{sharedSecret: sharedSecret, adminEmail: NormalizeEmail(adminEmail)}
}

func (m *Mock) Verify(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)

	if err := checkSyntax(email, password); err != nil {
		return nil, "", err
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.sharedSecret)) != 1 {
		return nil, "", common.ErrInvalidCredentials
	}

	now := time.Now()
	user := &models.User{
		// Stable per email, so repeated sign-ins resolve to the same account.
		ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Email:     email,
		Name:      localPart(email),
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if email == m.adminEmail {
		user.Name = "Admin User"
		user.Role = models.RoleAdmin
	}

	token, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

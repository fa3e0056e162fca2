package verifier

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
	"github.com/dmitrijs2005/admingate/internal/server/auth"
	"github.com/dmitrijs2005/admingate/internal/server/repositories/users"
)

// StoreVerifier checks credentials against the user repository: bcrypt
// comparison of the password against the stored hash, then a signed bearer
// token for the account.
type StoreVerifier struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewStoreVerifier(repo users.Repository, jwtSecret []byte, tokenValidity time.Duration) *StoreVerifier {
	return &StoreVerifier{repo: repo, jwtSecret: jwtSecret, tokenValidity: tokenValidity}
}

func (v *StoreVerifier) Verify(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)

	if err := checkSyntax(email, password); err != nil {
		return nil, "", err
	}

	user, hash, err := v.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, v.jwtSecret, v.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

package verifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
	"github.com/dmitrijs2005/admingate/internal/server/auth"
	"github.com/dmitrijs2005/admingate/internal/server/repositories/users"
)

func seedRepo(t *testing.T) users.Repository {
	t.Helper()
	repo := users.NewMemoryRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	now := time.Now()
	_, err = repo.Create(context.Background(), &models.User{
		ID:        "u1",
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      models.RoleModerator,
		CreatedAt: now,
		UpdatedAt: now,
	}, string(hash))
	require.NoError(t, err)

	return repo
}

func TestStoreVerifier_Success(t *testing.T) {
	repo := seedRepo(t)
	v := NewStoreVerifier(repo, []byte("k"), time.Hour)

	user, token, err := v.Verify(context.Background(), "Alice@Example.com", "correct horse")
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleModerator, user.Role)

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestStoreVerifier_Failures(t *testing.T) {
	repo := seedRepo(t)
	v := NewStoreVerifier(repo, []byte("k"), time.Hour)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown account", email: "ghost@example.com", password: "whatever"},
		{name: "wrong password", email: "alice@example.com", password: "wrong"},
		{name: "empty password", email: "alice@example.com", password: ""},
		{name: "invalid email", email: "alice", password: "correct horse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := v.Verify(context.Background(), tt.email, tt.password)
			assert.True(t, errors.Is(err, common.ErrInvalidCredentials), "got %v", err)
		})
	}
}

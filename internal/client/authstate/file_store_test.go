package authstate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/admingate/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    uuid.NewString(),
		Email: "alice@example.com",
		Name:  "alice",
		Role:  models.RoleUser,
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "auth-storage.json"))
	assert.Equal(t, Record{}, s.Load())
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	s := NewFileStore(path)

	want := Record{User: testUser(), Token: "tok-123"}
	require.NoError(t, s.Save(want))

	got := s.Load()
	require.NotNil(t, got.User)
	assert.Equal(t, want.User.ID, got.User.ID)
	assert.Equal(t, want.User.Email, got.User.Email)
	assert.Equal(t, "tok-123", got.Token)
	assert.True(t, got.Authenticated())
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewFileStore(path)
	assert.Equal(t, Record{}, s.Load())
}

func TestFileStore_LoadVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	data, err := json.Marshal(map[string]any{
		"state":   map[string]any{"user": testUser(), "token": "tok"},
		"version": 2,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s := NewFileStore(path)
	assert.Equal(t, Record{}, s.Load())
}

func TestFileStore_SaveNormalizesHalfRecord(t *testing.T) {
	tests := []struct {
		name string
		r    Record
	}{
		{"user without token", Record{User: testUser()}},
		{"token without user", Record{Token: "orphan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFileStore(filepath.Join(t.TempDir(), "auth-storage.json"))
			require.NoError(t, s.Save(tt.r))
			assert.Equal(t, Record{}, s.Load())
		})
	}
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(Record{User: testUser(), Token: "tok"}))
	require.NoError(t, s.Clear())

	assert.Equal(t, Record{}, s.Load())

	// The file itself stays in place with empty state.
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileStore_EnvelopeShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(Record{User: testUser(), Token: "tok"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "state")
	assert.Contains(t, raw, "version")
}

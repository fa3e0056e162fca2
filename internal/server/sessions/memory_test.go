package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/admingate/internal/models"
)

func testUser(id string) *models.User {
	return &models.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  "User " + id,
		Role:  models.RoleUser,
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(7 * 24 * time.Hour)

	id, err := s.Create(ctx, testUser("u1"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	// Unique identifiers per create.
	id2, err := s.Create(ctx, testUser("u1"))
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	got, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ExpiryEvictsOnRead(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(7 * 24 * time.Hour)

	id, err := s.Create(ctx, testUser("u1"))
	require.NoError(t, err)

	// Retrievable immediately.
	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Simulated time past the expiry: absent and removed from the store.
	s.now = func() time.Time { return time.Now().Add(7*24*time.Hour + time.Minute) }

	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_DestroyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	id, err := s.Create(ctx, testUser("u1"))
	require.NoError(t, err)

	require.NoError(t, s.Destroy(ctx, id))
	require.NoError(t, s.Destroy(ctx, id))
	require.NoError(t, s.Destroy(ctx, "never-existed"))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_UpdateUserSessions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	id1, err := s.Create(ctx, testUser("u1"))
	require.NoError(t, err)
	id2, err := s.Create(ctx, testUser("u1"))
	require.NoError(t, err)
	other, err := s.Create(ctx, testUser("u2"))
	require.NoError(t, err)

	updated := testUser("u1")
	updated.Name = "Renamed"
	require.NoError(t, s.UpdateUserSessions(ctx, "u1", updated))

	for _, id := range []string{id1, id2} {
		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Renamed", got.Name)
	}

	got, err := s.Get(ctx, other)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "User u2", got.Name)
}

func TestMemoryStore_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	u := testUser("u1")
	id, err := s.Create(ctx, u)
	require.NoError(t, err)

	// Mutating the original must not leak into the stored snapshot.
	u.Name = "Mutated"

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "User u1", got.Name)

	// Mutating the returned copy must not leak either.
	got.Name = "Mutated again"
	got2, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "User u1", got2.Name)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.Create(ctx, testUser("u1"))
			assert.NoError(t, err)
			_, err = s.Get(ctx, id)
			assert.NoError(t, err)
			assert.NoError(t, s.UpdateUserSessions(ctx, "u1", testUser("u1")))
			assert.NoError(t, s.Destroy(ctx, id))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len())
}

package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/admingate/internal/models"
)

type session struct {
	user      models.User
	expiresAt time.Time
}

// MemoryStore is a mutex-serialized in-memory Store. It is single-instance
// state: sessions are not shared across processes and do not survive a
// restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]session
	validity time.Duration

	// now is a test seam for simulated time.
	now func() time.Time
}

// NewMemoryStore returns a MemoryStore whose sessions live for validity.
func NewMemoryStore(validity time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]session),
		validity: validity,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, user *models.User) (string, error) {
	sessionID := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = session{user: *user, expiresAt: s.now().Add(s.validity)}
	return sessionID, nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}

	// Lazy eviction: expired entries are removed on read.
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, nil
	}

	user := sess.user
	return &user, nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) UpdateUserSessions(ctx context.Context, userID string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.user.ID == userID {
			sess.user = *user
			s.sessions[id] = sess
		}
	}
	return nil
}

// Len reports the number of stored sessions, expired entries included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

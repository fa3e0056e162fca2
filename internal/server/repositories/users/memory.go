package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/admingate/internal/common"
	"github.com/dmitrijs2005/admingate/internal/models"
)

type account struct {
	user models.User
	hash string
}

// MemoryRepository is a mutex-serialized in-memory Repository, used when no
// database DSN is configured and in tests.
type MemoryRepository struct {
	mu       sync.Mutex
	byEmail  map[string]account
	idToMail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail:  make(map[string]account),
		idToMail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrEmailAlreadyInUse
	}

	r.byEmail[user.Email] = account{user: *user, hash: passwordHash}
	r.idToMail[user.ID] = user.Email

	u := *user
	return &u, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.byEmail[email]
	if !ok {
		return nil, "", common.ErrorNotFound
	}

	u := acc.user
	return &u, acc.hash, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email, ok := r.idToMail[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	u := r.byEmail[email].user
	return &u, nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *models.User, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	oldEmail, ok := r.idToMail[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if user.Email != oldEmail {
		if _, taken := r.byEmail[user.Email]; taken {
			return nil, common.ErrEmailAlreadyInUse
		}
		delete(r.byEmail, oldEmail)
		r.idToMail[user.ID] = user.Email
	}

	r.byEmail[user.Email] = account{user: *user, hash: passwordHash}

	u := *user
	return &u, nil
}

// Package authctx is the single owner of client-side authentication state.
// It loads the persisted record on startup, resolves the hydration gate, and
// funnels every mutation (sign-in, sign-out, profile updates) through one
// place so readers never observe a partially updated record.
package authctx

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/admingate/internal/client/api"
	"github.com/dmitrijs2005/admingate/internal/client/authstate"
	"github.com/dmitrijs2005/admingate/internal/client/hydration"
	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/models"
)

// Context mediates between the API client, the persisted record, and the
// hydration gate.
type Context struct {
	api    api.Client
	store  authstate.Store
	gate   *hydration.Gate
	logger logging.Logger

	mu      sync.Mutex
	record  authstate.Record
	hydrate sync.Once
}

// New returns an unhydrated Context. Call Hydrate before reading auth state.
func New(client api.Client, store authstate.Store, logger logging.Logger) *Context {
	return &Context{
		api:    client,
		store:  store,
		gate:   hydration.NewGate(),
		logger: logger,
	}
}

// Hydrate loads the persisted record and resolves the gate. It runs its work
// exactly once; later calls return immediately.
func (c *Context) Hydrate(ctx context.Context) {
	c.hydrate.Do(func() {
		r := c.store.Load()

		c.mu.Lock()
		c.record = r
		c.mu.Unlock()

		c.gate.Resolve()
		c.logger.Debug(ctx, "auth state hydrated", "authenticated", r.Authenticated())
	})
}

// Gate exposes the hydration gate for consumers that need to wait on or
// subscribe to the loading transition.
func (c *Context) Gate() *hydration.Gate {
	return c.gate
}

// IsLoading reports whether the persisted record has not been loaded yet.
func (c *Context) IsLoading() bool {
	return !c.gate.Resolved()
}

// User returns a copy of the signed-in user, or nil when unauthenticated.
func (c *Context) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.record.User == nil {
		return nil
	}
	u := *c.record.User
	return &u
}

// IsAuthenticated reports whether a user is signed in.
func (c *Context) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record.Authenticated()
}

// SignIn authenticates against the backend and persists the resulting record.
func (c *Context) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	sess, err := c.api.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.adopt(ctx, sess)
}

// SignUp registers a new account; when the backend also establishes a
// session, the record is persisted just like after a sign-in.
func (c *Context) SignUp(ctx context.Context, email, name, password string) (*models.User, error) {
	sess, err := c.api.SignUp(ctx, email, name, password)
	if err != nil {
		return nil, err
	}
	return c.adopt(ctx, sess)
}

func (c *Context) adopt(ctx context.Context, sess *api.Session) (*models.User, error) {
	r := authstate.Record{User: sess.User, Token: sess.Token}

	c.mu.Lock()
	c.record = r
	c.mu.Unlock()

	if err := c.store.Save(r); err != nil {
		return nil, fmt.Errorf("persisting auth state: %w", err)
	}

	c.logger.Info(ctx, "signed in", "email", sess.User.Email)
	return sess.User, nil
}

// SignOut clears local state first, then tears down the server-side session.
// The local record is dropped even if the server call fails: a sign-out
// requested by the user must always take effect locally.
func (c *Context) SignOut(ctx context.Context) error {
	c.mu.Lock()
	wasAuthenticated := c.record.Authenticated()
	c.record = authstate.Record{}
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("clearing auth state: %w", err)
	}

	if err := c.api.SignOut(ctx); err != nil {
		c.logger.Warn(ctx, "server sign-out failed", "error", err.Error())
	}

	if wasAuthenticated {
		c.logger.Info(ctx, "signed out")
	}
	return nil
}

// UpdateUser sends a partial profile update and replaces the stored user with
// the backend's response. Calling it while unauthenticated is a no-op.
func (c *Context) UpdateUser(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	if !c.IsAuthenticated() {
		return nil, nil
	}

	updated, err := c.api.UpdateMe(ctx, upd)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.record.User = updated
	r := c.record
	c.mu.Unlock()

	if err := c.store.Save(r); err != nil {
		return nil, fmt.Errorf("persisting auth state: %w", err)
	}
	return updated, nil
}

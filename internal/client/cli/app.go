// Package cli implements the interactive AdminGate client.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/admingate/internal/client/api"
	"github.com/dmitrijs2005/admingate/internal/client/authctx"
	"github.com/dmitrijs2005/admingate/internal/client/authstate"
	"github.com/dmitrijs2005/admingate/internal/client/config"
	"github.com/dmitrijs2005/admingate/internal/logging"
)

// App ties the interactive loop to the auth context. All authentication state
// lives in the auth context; the App only handles prompting and dispatch.
type App struct {
	config *config.Config
	auth   *authctx.Context
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := api.NewHTTPClient(c.ServerURL)
	if err != nil {
		return nil, err
	}

	store := authstate.NewFileStore(c.StateFile)
	auth := authctx.New(apiClient, store, logging.NewDefault())

	return &App{config: c, auth: auth, reader: bufio.NewReader(os.Stdin)}, nil
}

// Run hydrates persisted auth state and enters the command loop.
func (a *App) Run(ctx context.Context) {
	a.auth.Hydrate(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.auth.User(); u != nil {
		return u.Email + " (" + string(u.Role) + ")"
	}
	return "anonymous"
}

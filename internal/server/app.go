// Package server initializes and runs the AdminGate server: it wires the
// user store, session store, credential verifier, and HTTP endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/server/config"
	"github.com/dmitrijs2005/admingate/internal/server/httpapi"
	"github.com/dmitrijs2005/admingate/internal/server/migrations"
	"github.com/dmitrijs2005/admingate/internal/server/repositories/users"
	"github.com/dmitrijs2005/admingate/internal/server/services"
	"github.com/dmitrijs2005/admingate/internal/server/sessions"
	"github.com/dmitrijs2005/admingate/internal/server/verifier"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
	userService *services.UserService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewDefault()

	repo, err := buildUserRepository(c)
	if err != nil {
		return nil, fmt.Errorf("user store init error: %w", err)
	}

	sessionStore := sessions.NewMemoryStore(c.SessionValidityDuration)

	us := services.NewUserService(repo, sessionStore, []byte(c.SecretKey), c.SessionValidityDuration, logger)
	if err := us.SeedAdmin(context.Background(), c.AdminEmail, c.AdminPassword); err != nil {
		return nil, fmt.Errorf("admin seed error: %w", err)
	}

	var v verifier.CredentialVerifier
	if c.MockAuth {
		v = verifier.NewMock(c.MockSharedSecret, c.AdminEmail)
	} else {
		v = verifier.NewStoreVerifier(repo, []byte(c.SecretKey), c.SessionValidityDuration)
	}

	as := services.NewAuthService(v, sessionStore, logger)

	return &App{config: c, logger: logger, authService: as, userService: us}, nil
}

// buildUserRepository opens Postgres and runs migrations when a DSN is
// configured; otherwise accounts live in memory for the process lifetime.
func buildUserRepository(c *config.Config) (users.Repository, error) {
	if c.DatabaseDSN == "" {
		return users.NewMemoryRepository(), nil
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(context.Background(), db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return users.NewPostgresRepository(db), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(
		app.config.EndpointAddr,
		app.logger,
		app.authService,
		app.userService,
		app.config.CookieName,
		app.config.SessionValidityDuration,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}

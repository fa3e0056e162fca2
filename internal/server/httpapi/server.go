// Package httpapi exposes the auth and account operations over HTTP. The
// session identifier travels in an http-only cookie; the bearer token in the
// response body is what the client persists locally.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/admingate/internal/logging"
	"github.com/dmitrijs2005/admingate/internal/models"
	"github.com/dmitrijs2005/admingate/internal/server/services"
)

type HTTPServer struct {
	address         string
	logger          logging.Logger
	auth            *services.AuthService
	users           *services.UserService
	cookieName      string
	sessionValidity time.Duration
	validate        *validator.Validate
}

func NewHTTPServer(addr string, l logging.Logger, as *services.AuthService, us *services.UserService, cookieName string, sessionValidity time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         addr,
		logger:          l.With("module", "http_server"),
		auth:            as,
		users:           us,
		cookieName:      cookieName,
		sessionValidity: sessionValidity,
		validate:        validator.New(),
	}
}

// Router assembles the route table. Split from Run so tests can drive the
// handlers through httptest.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signin", s.handleSignIn)
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/signout", s.handleSignOut)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/auth/me", s.handleMe)
			r.Patch("/users/me", s.handleUpdateMe)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Use(s.requireRole(models.RoleAdmin))
			r.Patch("/admin/users/{userID}", s.handleAdminUpdateUser)
		})
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

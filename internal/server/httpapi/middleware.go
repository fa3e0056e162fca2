package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/admingate/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// withUser returns a child context carrying the session's user snapshot.
func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// currentUser extracts the authenticated user from the context. Handlers
// behind requireSession can rely on a non-nil result.
func currentUser(ctx context.Context) *models.User {
	if u, ok := ctx.Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}

// requireSession resolves the session cookie against the store and injects
// the user into the request context. Absent or expired sessions stop the
// chain with 401.
func (s *HTTPServer) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := s.sessionIDFromRequest(r)
		if sessionID == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := s.auth.Session(r.Context(), sessionID)
		if err != nil {
			s.logger.Error(r.Context(), "session lookup failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if user == nil {
			writeError(w, http.StatusUnauthorized, "session expired or invalid")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// requireRole allows only users whose role is in the allow-list. Runs after
// requireSession; an authenticated user with the wrong role gets 403, which
// callers can distinguish from the 401 of a missing session.
func (s *HTTPServer) requireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	allowSet := make(map[models.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := currentUser(r.Context())
			if user == nil {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if _, ok := allowSet[user.Role]; !ok {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

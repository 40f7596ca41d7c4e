package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mvachon/userd/internal/repository"
	"github.com/mvachon/userd/internal/session"
)

type contextKey string

const principalKey contextKey = "principal"

// Session gates an endpoint on a valid session. The session identity is
// re-validated against the user store: the session store faithfully returns
// whatever was bound, including principals deleted since login, and those
// must not pass the gate.
func Session(sessions *session.Manager, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := sessions.Identity(r)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, err := users.GetByName(r.Context(), principal); err != nil {
				slog.Warn("session principal no longer resolves", slog.String("name", principal))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal returns the authenticated username placed by Session.
func GetPrincipal(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalKey).(string)
	return principal, ok
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Mialde/Micheldekker/internal/app"
	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/http/response"
	"github.com/Mialde/Micheldekker/internal/session"
)

type contextKey string

const ContextSessionKey contextKey = "session"

// SessionMiddleware resolves the bearer token to a live staff session.
type SessionMiddleware struct {
	auth *app.AuthService
}

func NewSessionMiddleware(auth *app.AuthService) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		sess, ok := m.auth.Authenticate(parts[1])
		if !ok {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid or expired session", nil))
			return
		}
		ctx := context.WithValue(r.Context(), ContextSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission denies the request unless the session's role grants the
// permission.
func RequirePermission(access *app.AccessService, p role.Permission) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthorized, "session not found", nil))
				return
			}
			if !access.HasPermission(sess, p) {
				response.Error(w, common.NewError(common.CodeForbidden, "insufficient permissions", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(ContextSessionKey).(*session.Session)
	return sess, ok
}

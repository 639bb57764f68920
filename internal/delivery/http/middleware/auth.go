package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// SetClaims returns a context carrying the verified token claims. Used by auth middleware.
func SetClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified claims from the context, if present.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.Claims)
	return c, ok
}

// RequireRole returns a wrapper that validates the Bearer token and requires role among its claims.
// A missing or invalid token yields 401; a valid token without the role yields 403.
// A nil verifier disables the check.
func RequireRole(verifier domain.TokenVerifier, role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			if !claims.HasRole(role) {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r.WithContext(SetClaims(r.Context(), claims)))
		})
	}
}

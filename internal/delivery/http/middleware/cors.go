package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowMethods  = "GET, POST, PATCH, DELETE, OPTIONS"
	corsAllowHeaders  = "Authorization, Content-Type, Accept, X-Request-Id"
	corsExposeHeaders = "X-Request-Id, Retry-After"
	corsMaxAge        = "86400"
)

// corsPolicy decides which origins are echoed back. Credentials are only
// allowed for origins listed by name, never through "*".
type corsPolicy struct {
	origins  map[string]struct{}
	allowAll bool
}

func newCORSPolicy(allowedOrigins []string) *corsPolicy {
	p := &corsPolicy{origins: make(map[string]struct{}, len(allowedOrigins))}
	for _, o := range allowedOrigins {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			p.allowAll = true
		default:
			p.origins[o] = struct{}{}
		}
	}
	return p
}

// allow reports whether origin may read responses and whether it may send credentials.
func (p *corsPolicy) allow(origin string) (ok, credentials bool) {
	if origin == "" {
		return false, false
	}
	if _, listed := p.origins[origin]; listed {
		return true, true
	}
	return p.allowAll, false
}

// CORS sets CORS headers for allowed origins before the handler runs and
// answers preflight requests (OPTIONS with Access-Control-Request-Method)
// with 204. Other OPTIONS requests reach next.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	policy := newCORSPolicy(allowedOrigins)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		h := w.Header()
		h.Add("Vary", "Origin")
		ok, credentials := policy.allow(origin)
		if ok {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
			if credentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if ok {
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

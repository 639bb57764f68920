package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	claims *domain.Claims
	err    error
}

func (f *fakeTokenVerifier) Verify(_ string) (*domain.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func TestRequireRole(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	admin := &domain.Claims{Subject: "ops", Roles: []string{domain.RoleAdmin}}

	tests := []struct {
		name         string
		authHeader   string
		verifier     domain.TokenVerifier
		wantStatus   int
		wantBodyCode string
		nextCalled   bool
	}{
		{
			name:       "admin token sets claims and calls next",
			authHeader: "Bearer valid-token",
			verifier:   &fakeTokenVerifier{claims: admin},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:         "missing authorization header",
			verifier:     &fakeTokenVerifier{claims: admin},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "invalid authorization format no Bearer prefix",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{claims: admin},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "empty token after Bearer",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{claims: admin},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "verifier returns error",
			authHeader:   "Bearer bad-token",
			verifier:     &fakeTokenVerifier{err: errors.New("invalid or expired token")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:         "token without role",
			authHeader:   "Bearer user-token",
			verifier:     &fakeTokenVerifier{claims: &domain.Claims{Subject: "u1"}},
			wantStatus:   http.StatusForbidden,
			wantBodyCode: helpers.ErrCodeForbidden,
		},
		{
			name:       "nil verifier disables auth",
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var captured *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				captured, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireRole(tt.verifier, domain.RoleAdmin, logger)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/admin/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.nextCalled && tt.verifier != nil {
				assert.Equal(t, admin, captured)
			}
			if tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

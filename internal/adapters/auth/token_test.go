package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explorewithme/internal/domain"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	issuer := NewJWTIssuer(secret)

	token, err := issuer.Issue("ops", []string{domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestJWTVerifier_Verify(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	valid, err := issuer.Issue("ops", []string{domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	expiredIssuer := &jwtIssuer{secret: []byte("test-secret"), now: func() time.Time { return time.Now().Add(-2 * time.Hour) }}
	expired, err := expiredIssuer.Issue("ops", []string{domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	foreign, err := NewJWTIssuer("other-secret").Issue("ops", []string{domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtClaims{Roles: []string{"admin"}}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	verifier := NewJWTVerifier("test-secret")

	claims, err := verifier.Verify(valid)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.True(t, claims.HasRole(domain.RoleAdmin))

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"alg none":     none,
		"garbage":      "not-a-jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := verifier.Verify(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

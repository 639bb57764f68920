package domain

import "time"

// RoleAdmin grants access to the /admin API.
const RoleAdmin = "admin"

// Claims is the verified content of an access token.
type Claims struct {
	Subject string
	Roles   []string
}

// HasRole reports whether the claims carry role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenIssuer issues tokens (e.g. JWT) for a subject.
type TokenIssuer interface {
	Issue(subject string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

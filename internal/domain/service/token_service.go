package service

import (
	"time"

	"scubakeep/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in access tokens. The subject
// registered claim carries the diver ID; username and role are embedded
// directly so protected routes don't re-fetch the diver on every request.
// The tradeoff: a role change only takes effect once the token expires.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// DiverID parses the subject claim back into the diver's unique ID.
func (c *Claims) DiverID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token asserting the diver's
	// identity and role.
	Issue(diverID uuid.UUID, username string, role entity.Role) (string, error)

	// Verify checks the signature and expiry of a token string and returns
	// its claims. No claim is trusted before the signature is verified.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}

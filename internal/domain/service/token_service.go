package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for admin panel tokens. The holder is RegisteredClaims.Subject.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying admin tokens.
// Tokens are minted by operators out of band; the HTTP layer only verifies them.
type TokenService interface {
	// GenerateToken signs a token for subject with the given roles and lifetime.
	GenerateToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

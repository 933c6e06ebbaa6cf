package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by a session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens.
// Tokens carry no expiry; they stay valid until the signing secret changes.
type TokenService interface {
	// Sign creates a token asserting the given username.
	Sign(username string) (string, error)

	// Verify checks the signature of a token and returns its claims.
	Verify(tokenString string) (*Claims, error)
}

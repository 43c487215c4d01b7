package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	// IssueToken creates a signed token for the user that expires after the configured lifetime.
	IssueToken(userID, email string) (string, error)

	// ValidateToken verifies the signature and expiry of a token and returns its claims.
	// It fails with domain ErrTokenExpired or ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)
}

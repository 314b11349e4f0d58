package auth

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload for both access and refresh tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Scope    string `json:"scope"`
	jwt.RegisteredClaims
}

const (
	scopeAccess  = "access"
	scopeRefresh = "refresh"
)

package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims of an authenticated end user.
// The subject claim carries the user id issued by the auth provider.
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the token
func (c *UserClaims) UserID() string {
	return c.Subject
}

// TokenResponse is returned when a token is issued by tooling
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

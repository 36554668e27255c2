package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every issued bearer token. Email is the
// identity used for all downstream lookups; Name is informational.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

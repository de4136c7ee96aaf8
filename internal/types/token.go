package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an issued bearer token: the subject's
// identity plus the registered issued-at/expiry claims.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim off a bearer token without verifying the
// signature. Verification is the server's job; the client only wants to know
// whether a cached token is already dead before spending a network call on it.
func TokenExpiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired reports whether the token carries an exp claim in the past.
// Tokens without a readable expiry are not considered expired here; the
// server gets the final word on those.
func TokenExpired(tokenString string) bool {
	exp, ok := TokenExpiry(tokenString)
	return ok && exp.Before(time.Now())
}

// Package auth issues and verifies the signed session tokens carried in
// the admin cookie.
//
// Two verifier implementations exist because token checks run in two
// different environments: the standard one uses the JWT library, the
// restricted one only web-standard HMAC primitives. Both must accept
// every token produced by Issue.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed session lifetime.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure (bad signature,
// malformed token, expiry). Callers get no finer distinction.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: the subject username plus standard
// issued-at/expiry timestamps.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issuer signs session tokens with the server-held secret.
type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue returns an HS256 token for username, expiring in TokenTTL.
func (i *Issuer) Issue(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verifier validates a session token and returns the embedded username.
type Verifier interface {
	Verify(token string) (string, error)
}

// StandardVerifier is the full-runtime implementation backed by the
// JWT library.
type StandardVerifier struct {
	secret []byte
}

func NewStandardVerifier(secret string) *StandardVerifier {
	return &StandardVerifier{secret: []byte(secret)}
}

func (v *StandardVerifier) Verify(token string) (string, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}

// NewVerifier picks the implementation for the configured runtime.
func NewVerifier(kind, secret string) Verifier {
	if kind == "restricted" {
		return NewRestrictedVerifier(secret)
	}
	return NewStandardVerifier(secret)
}

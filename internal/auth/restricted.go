package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// RestrictedVerifier validates compact HS256 tokens with nothing but
// HMAC and base64, for the runtime that cannot load the JWT module. It
// must stay interchangeable with StandardVerifier.
type RestrictedVerifier struct {
	secret []byte
}

func NewRestrictedVerifier(secret string) *RestrictedVerifier {
	return &RestrictedVerifier{secret: []byte(secret)}
}

func (v *RestrictedVerifier) Verify(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidToken
	}
	var header struct {
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(headerJSON, &header); err != nil || header.Alg != "HS256" {
		return "", ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidToken
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(parts[0] + "." + parts[1]))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return "", ErrInvalidToken
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidToken
	}
	var claims struct {
		Username string `json:"username"`
		Exp      int64  `json:"exp"`
	}
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return "", ErrInvalidToken
	}
	if claims.Username == "" || claims.Exp == 0 {
		return "", ErrInvalidToken
	}
	if time.Now().Unix() >= claims.Exp {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}

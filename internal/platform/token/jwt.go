// Package token implements JWT validation backing the auth middleware.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"loanflow/pkg/platform/middleware/auth"
)

// Validator validates HS256-signed bearer tokens.
type Validator struct {
	signingKey []byte
}

// NewValidator creates a validator for the given signing key.
func NewValidator(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

// ValidateToken parses and verifies a token, returning its claims.
// Implements auth.TokenValidator.
func (v *Validator) ValidateToken(tokenString string) (*auth.Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return &auth.Claims{Subject: subject}, nil
}

// Issue signs a token for the given subject. Used by provisioning tooling
// and tests; the service itself only validates.
func (v *Validator) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Package token issues and decodes the bearer credentials handed out on login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalid = errors.New("token is invalid or expired")

const defaultTTL = 24 * time.Hour

// JWTIssuer signs HS256 tokens whose subject is the user id.
type JWTIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewJWTIssuer(key []byte, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTIssuer{key: key, ttl: ttl, now: time.Now}
}

func (i *JWTIssuer) CreateToken(subjectID string) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// DecodeToken verifies raw and returns its subject. Every rejection is ErrInvalid.
func (i *JWTIssuer) DecodeToken(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.key, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(i.now))
	if err != nil || !tok.Valid {
		return "", ErrInvalid
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalid
	}
	return sub, nil
}

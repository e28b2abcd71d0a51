package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad signature,
	// malformed token, or a non-HMAC algorithm in the header.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenIssuer mints and verifies stateless HMAC-signed session tokens.
// The subject is the account email; nothing is persisted server-side.
type TokenIssuer struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer for the given HMAC algorithm
// (HS256, HS384 or HS512). Unknown algorithms fall back to HS256.
func NewTokenIssuer(secret, algorithm string, ttl time.Duration) *TokenIssuer {
	method := jwt.SigningMethodHS256
	switch algorithm {
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	}
	return &TokenIssuer{secret: []byte(secret), method: method, ttl: ttl}
}

// Mint signs a token with sub/iat/exp claims bound to the subject.
func (i *TokenIssuer) Mint(subject string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(i.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	return signed, exp, err
}

// Verify checks signature and expiry and returns the subject.
func (i *TokenIssuer) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// Package auth holds the authentication and ownership-authorization core:
// password hashing, stateless session tokens, principal resolution and the
// ownership guard. Nothing here keeps per-request state.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload of a session token: the standard claims
// (sub = user id, iat, exp) plus the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Identity is what a verified token vouches for.
type Identity struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies HS256 session tokens. The secret and TTL
// are fixed at construction, so a codec is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

func NewTokenCodec(secret []byte, ttl time.Duration) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &TokenCodec{secret: key, ttl: ttl, method: jwt.SigningMethodHS256}, nil
}

// TTL returns the lifetime given to every issued token.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

// Issue signs a token for userID valid from now until now+TTL.
func (c *TokenCodec) Issue(userID, email string, now time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("token subject must not be empty")
	}

	token := jwt.NewWithClaims(c.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: email,
	})

	return token.SignedString(c.secret)
}

// Verify checks the token signature and expiry against now and returns the
// embedded identity. Failures are one of common.ErrTokenMalformed,
// common.ErrTokenBadSignature or common.ErrTokenExpired; nothing else is
// consulted.
func (c *TokenCodec) Verify(tokenString string, now time.Time) (*Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrTokenMalformed
	}

	id := &Identity{
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}

	return id, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return common.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	default:
		return common.ErrTokenMalformed
	}
}

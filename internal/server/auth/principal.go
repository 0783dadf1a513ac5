package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
)

// Principal is the caller identity established for a single request. It is
// passed explicitly to every operation that needs it.
type Principal struct {
	UserID string
	Email  string
}

// Resolver turns an inbound token into a Principal. It is run once per
// protected request and does no caching.
type Resolver struct {
	codec *TokenCodec
	clock func() time.Time
}

// NewResolver creates a Resolver. A nil clock means time.Now.
func NewResolver(codec *TokenCodec, clock func() time.Time) *Resolver {
	if clock == nil {
		clock = time.Now
	}
	return &Resolver{codec: codec, clock: clock}
}

// Resolve verifies token and returns the principal it names. An empty token
// means none was sent. Every failure matches common.ErrNotAuthenticated; the
// underlying token error stays reachable through errors.Is for logging.
func (r *Resolver) Resolve(token string) (Principal, error) {
	if token == "" {
		return Principal{}, common.ErrNotAuthenticated
	}

	id, err := r.codec.Verify(token, r.clock())
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", common.ErrNotAuthenticated, err)
	}

	return Principal{UserID: id.UserID, Email: id.Email}, nil
}

// RejectReason names why Resolve failed: "missing", "malformed",
// "bad_signature", "expired", or "" when err is not an authentication error.
func RejectReason(err error) string {
	switch {
	case err == nil || !errors.Is(err, common.ErrNotAuthenticated):
		return ""
	case errors.Is(err, common.ErrTokenExpired):
		return "expired"
	case errors.Is(err, common.ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, common.ErrTokenMalformed):
		return "malformed"
	default:
		return "missing"
	}
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eventplanner/internal/common"
)

// OwnedLookup finds a resource by id restricted to one owner, in a single
// query. It returns common.ErrorNotFound when no such row exists.
type OwnedLookup[T any] interface {
	FindByIDAndUser(ctx context.Context, id, userID string) (T, error)
}

// OwnershipGuard admits a principal to a resource only if the principal owns
// it. A resource owned by someone else is reported exactly like a missing
// one, so callers cannot probe for other users' ids.
type OwnershipGuard[T any] struct {
	lookup OwnedLookup[T]
}

func NewOwnershipGuard[T any](lookup OwnedLookup[T]) *OwnershipGuard[T] {
	return &OwnershipGuard[T]{lookup: lookup}
}

// Authorize returns the resource when p owns resourceID. It fails with
// common.ErrNotFoundOrForbidden when there is no match and with
// common.ErrNotAuthenticated for an empty principal. Store failures are
// returned wrapped and match neither.
func (g *OwnershipGuard[T]) Authorize(ctx context.Context, p Principal, resourceID string) (T, error) {
	var zero T

	if p.UserID == "" {
		return zero, common.ErrNotAuthenticated
	}

	res, err := g.lookup.FindByIDAndUser(ctx, resourceID, p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return zero, common.ErrNotFoundOrForbidden
		}
		return zero, fmt.Errorf("error looking up owned resource: %w", err)
	}

	return res, nil
}

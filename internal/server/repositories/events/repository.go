// Package events stores events. Every read is scoped to the owning user.
package events

import (
	"context"

	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	// FindByUser returns the user's events ordered by date, then creation time.
	FindByUser(ctx context.Context, userID string) ([]*models.Event, error)
	// FindByIDAndUser returns common.ErrorNotFound both when the event does
	// not exist and when it belongs to someone else.
	FindByIDAndUser(ctx context.Context, id, userID string) (*models.Event, error)
}

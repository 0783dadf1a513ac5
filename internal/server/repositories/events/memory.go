package events

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

// ownedKey addresses an event together with its owner, so a lookup is a
// single match on both, like the SQL query.
type ownedKey struct {
	userID string
	id     string
}

// MemoryRepository is an in-process Repository used by tests and local runs.
type MemoryRepository struct {
	mu     sync.RWMutex
	events map[ownedKey]models.Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: make(map[ownedKey]models.Event)}
}

func (r *MemoryRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.events[ownedKey{userID: e.UserID, id: e.ID}] = *e

	return e, nil
}

func (r *MemoryRepository) FindByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	r.mu.RLock()
	var result []*models.Event
	for _, e := range r.events {
		if e.UserID == userID {
			e := e
			result = append(result, &e)
		}
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (r *MemoryRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[ownedKey{userID: userID, id: id}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &e, nil
}

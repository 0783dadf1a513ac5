package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// EventService manages events on behalf of an authenticated principal. Every
// operation is scoped to events the principal owns.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       *auth.OwnershipGuard[*models.Event]
	now         func() time.Time
}

func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{
		db:          db,
		repomanager: m,
		guard:       auth.NewOwnershipGuard[*models.Event](m.Events(db)),
		now:         time.Now,
	}
}

// CreateEvent validates draft and stores it as a new event owned by p.
func (s *EventService) CreateEvent(ctx context.Context, p auth.Principal, draft models.EventDraft) (*models.Event, error) {
	if p.UserID == "" {
		return nil, common.ErrNotAuthenticated
	}
	if err := draft.Validate(s.now()); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:            uuid.NewString(),
		UserID:        p.UserID,
		Title:         strings.TrimSpace(draft.Title),
		Date:          draft.Date,
		BudgetCents:   draft.BudgetCents,
		Description:   strings.TrimSpace(draft.Description),
		AttendeeCount: draft.AttendeeCount,
	}

	created, err := s.repomanager.Events(s.db).Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

// ListEvents returns the events owned by p.
func (s *EventService) ListEvents(ctx context.Context, p auth.Principal) ([]*models.Event, error) {
	if p.UserID == "" {
		return nil, common.ErrNotAuthenticated
	}

	list, err := s.repomanager.Events(s.db).FindByUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return list, nil
}

// GetEvent returns the event with the given id if p owns it. Missing and
// foreign events both yield common.ErrNotFoundOrForbidden.
func (s *EventService) GetEvent(ctx context.Context, p auth.Principal, id string) (*models.Event, error) {
	if p.UserID == "" {
		return nil, common.ErrNotAuthenticated
	}
	// ids are uuids; anything else cannot exist and must not reach the store.
	// Stored ids are canonical, so other spellings of the same uuid are
	// normalised first.
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, common.ErrNotFoundOrForbidden
	}

	return s.guard.Authorize(ctx, p, parsed.String())
}

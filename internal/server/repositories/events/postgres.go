package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
)

// PostgresRepository implements event storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	query :=
		`INSERT INTO events (id, user_id, title, date, budget_cents, description, attendee_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.UserID, e.Title, e.Date, e.BudgetCents, e.Description, e.AttendeeCount).
		Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	query :=
		`SELECT id, user_id, title, date, budget_cents, description, attendee_count, created_at, updated_at
		 FROM events
		 WHERE user_id = $1
		 ORDER BY date, created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Event
	for rows.Next() {
		e := &models.Event{}
		if err := scanEvent(rows, e); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Event, error) {
	query :=
		`SELECT id, user_id, title, date, budget_cents, description, attendee_count, created_at, updated_at
		 FROM events
		 WHERE id = $1 AND user_id = $2
		 `

	e := &models.Event{}
	err := scanEvent(r.db.QueryRowContext(ctx, query, id, userID), e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner, e *models.Event) error {
	return s.Scan(&e.ID, &e.UserID, &e.Title, &e.Date, &e.BudgetCents,
		&e.Description, &e.AttendeeCount, &e.CreatedAt, &e.UpdatedAt)
}

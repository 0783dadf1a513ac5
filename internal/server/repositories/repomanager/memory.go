package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/events"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves the same in-memory repositories regardless
// of the DBTX it is given. Transactions therefore do not isolate anything.
type InMemoryRepositoryManager struct {
	users  *users.MemoryRepository
	events *events.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  users.NewMemoryRepository(),
		events: events.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Events(dbx.DBTX) events.Repository {
	return m.events
}

// UserCount reports how many users are stored.
func (m *InMemoryRepositoryManager) UserCount() int {
	return m.users.Count()
}

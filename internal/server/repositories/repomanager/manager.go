// Package repomanager hands out repositories bound to a connection or a
// transaction, so services can run several repository calls in one tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eventplanner/internal/dbx"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/events"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Events(db dbx.DBTX) events.Repository
}

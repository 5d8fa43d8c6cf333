// Package repomanager vends repository implementations bound to a database
// handle (or transaction) and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"portrussell/internal/dbx"
	"portrussell/internal/server/repositories/catways"
	"portrussell/internal/server/repositories/reservations"
	"portrussell/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the provided DBTX, so the
// same constructor works both inside and outside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Catways(db dbx.DBTX) catways.Repository
	Reservations(db dbx.DBTX) reservations.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

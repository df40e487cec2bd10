package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/migrations"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager serves repositories from the documents table and
// runs the embedded goose migrations.
type PostgresRepositoryManager struct {
	StoreRepositoryManager
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
// The manager owns db and closes it on Close.
func NewPostgresRepositoryManager(db *sql.DB, c Collections) (RepositoryManager, error) {
	if db == nil {
		return nil, fmt.Errorf("postgres repository manager: nil db")
	}
	return &PostgresRepositoryManager{
		StoreRepositoryManager: StoreRepositoryManager{
			store:       docstore.NewPostgresStore(db),
			collections: c,
		},
		db: db,
	}, nil
}

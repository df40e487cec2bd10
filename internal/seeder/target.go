package seeder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/dbx"
	"github.com/dmitrijs2005/electro/internal/docstore"
)

// Target stores the records of one partition.
type Target interface {
	Load(ctx context.Context, partition string, docs []docstore.Document) error
}

// PostgresTarget inserts a whole partition in one transaction, so a failed
// load leaves the partition untouched.
type PostgresTarget struct {
	db *sql.DB
}

func NewPostgresTarget(db *sql.DB) *PostgresTarget {
	return &PostgresTarget{db: db}
}

func (t *PostgresTarget) Load(ctx context.Context, partition string, docs []docstore.Document) error {
	return dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		c := docstore.NewPostgresCollection(tx, partition)
		for i, d := range docs {
			if _, err := c.InsertOne(ctx, d); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil
	})
}

package repomanager

import (
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/models"
)

// NewMemoryRepositoryManager keeps everything in process memory with the
// same uniqueness rules the PostgreSQL schema enforces on accounts.
func NewMemoryRepositoryManager(c Collections) RepositoryManager {
	store := docstore.NewMemoryStore(
		docstore.WithUniqueField(c.Users, models.FieldEmail),
	)
	return &StoreRepositoryManager{store: store, collections: c}
}

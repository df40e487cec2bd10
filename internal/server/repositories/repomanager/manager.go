// Package repomanager vends repositories bound to one document store and
// exposes the schema migration hook of that store.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/repositories/cartitems"
	"github.com/dmitrijs2005/electro/internal/server/repositories/products"
	"github.com/dmitrijs2005/electro/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Ping(context.Context) error
	Users() users.Repository
	CartItems() cartitems.Repository
	Partitions(names []string) (products.PartitionSet, error)
	Close() error
}

// Collections names the non-catalog collections.
type Collections struct {
	Users     string
	CartItems string
}

// StoreRepositoryManager builds repositories over a docstore.Store.
type StoreRepositoryManager struct {
	store       docstore.Store
	collections Collections
}

func (m *StoreRepositoryManager) Users() users.Repository {
	return users.NewDocstoreRepository(m.store.Collection(m.collections.Users))
}

func (m *StoreRepositoryManager) CartItems() cartitems.Repository {
	return cartitems.NewDocstoreRepository(m.store.Collection(m.collections.CartItems))
}

// Partitions resolves catalog partition names in priority order.
func (m *StoreRepositoryManager) Partitions(names []string) (products.PartitionSet, error) {
	return products.NewPartitionSet(m.store, names)
}

func (m *StoreRepositoryManager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *StoreRepositoryManager) Close() error {
	return m.store.Close()
}

// RunMigrations is a no-op for stores without a schema.
func (m *StoreRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

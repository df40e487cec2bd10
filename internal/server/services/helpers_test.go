package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/config"
	"github.com/dmitrijs2005/electro/internal/server/repositories/cartitems"
	"github.com/dmitrijs2005/electro/internal/server/repositories/products"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/electro/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "k"
	return cfg
}

func newManager(t *testing.T) repomanager.RepositoryManager {
	t.Helper()
	cfg := testConfig()
	return repomanager.NewMemoryRepositoryManager(repomanager.Collections{
		Users:     cfg.UsersCollection,
		CartItems: cfg.CartCollection,
	})
}

// seed inserts docs into partition and returns their identifiers.
func seed(t *testing.T, m repomanager.RepositoryManager, partition string, docs ...docstore.Document) []string {
	t.Helper()
	set, err := m.Partitions([]string{partition})
	require.NoError(t, err)
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		id, err := set[0].Insert(context.Background(), d)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

var errStoreDown = errors.New("store down")

// brokenCollection fails every call.
type brokenCollection struct{}

func (brokenCollection) FindOne(context.Context, string) (docstore.Document, error) {
	return nil, errStoreDown
}
func (brokenCollection) Find(context.Context, docstore.Filter) ([]docstore.Document, error) {
	return nil, errStoreDown
}
func (brokenCollection) InsertOne(context.Context, docstore.Document) (string, error) {
	return "", errStoreDown
}
func (brokenCollection) UpdateOne(context.Context, string, docstore.Document) error {
	return errStoreDown
}
func (brokenCollection) DeleteOne(context.Context, string) error { return errStoreDown }

type brokenStore struct{}

func (brokenStore) Collection(string) docstore.Collection { return brokenCollection{} }
func (brokenStore) Ping(context.Context) error            { return errStoreDown }
func (brokenStore) Close() error                          { return nil }

// brokenManager vends repositories over a store that always fails.
type brokenManager struct{}

func (brokenManager) RunMigrations(context.Context) error { return nil }
func (brokenManager) Ping(context.Context) error          { return errStoreDown }
func (brokenManager) Close() error                        { return nil }
func (brokenManager) Users() users.Repository {
	return users.NewDocstoreRepository(brokenCollection{})
}
func (brokenManager) CartItems() cartitems.Repository {
	return cartitems.NewDocstoreRepository(brokenCollection{})
}
func (brokenManager) Partitions(names []string) (products.PartitionSet, error) {
	return products.NewPartitionSet(brokenStore{}, names)
}

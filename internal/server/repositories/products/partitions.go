// Package products exposes catalog partitions: independently populated
// collections of product records sharing one schema.
package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/models"
)

var (
	ErrNoPartitions       = errors.New("partition set is empty")
	ErrDuplicatePartition = errors.New("duplicate partition name")
)

// Partition is a named handle to one catalog collection.
type Partition struct {
	Name       string
	collection docstore.Collection
}

func NewPartition(name string, c docstore.Collection) Partition {
	return Partition{Name: name, collection: c}
}

// FindByID returns the product with id or docstore.ErrNotFound.
func (p Partition) FindByID(ctx context.Context, id string) (*models.Product, error) {
	doc, err := p.collection.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.ProductFromDocument(doc), nil
}

// Find returns every product matching f.
func (p Partition) Find(ctx context.Context, f docstore.Filter) ([]*models.Product, error) {
	docs, err := p.collection.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	return models.ProductsFromDocuments(docs), nil
}

// Insert stores a product record and returns its identifier. Records
// without an identifier get a new one.
func (p Partition) Insert(ctx context.Context, doc docstore.Document) (string, error) {
	return p.collection.InsertOne(ctx, doc)
}

// PartitionSet is an ordered list of partitions. Order is the lookup priority:
// an earlier partition shadows later ones holding the same identifier.
type PartitionSet []Partition

// NewPartitionSet resolves names against store in the given order.
func NewPartitionSet(store docstore.Store, names []string) (PartitionSet, error) {
	if len(names) == 0 {
		return nil, ErrNoPartitions
	}
	seen := make(map[string]bool, len(names))
	set := make(PartitionSet, 0, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePartition, n)
		}
		seen[n] = true
		set = append(set, NewPartition(n, store.Collection(n)))
	}
	return set, nil
}

// FindFirst scans partitions in order and returns the first product stored
// under id together with the name of the partition holding it. Store errors
// stop the scan.
func (s PartitionSet) FindFirst(ctx context.Context, id string) (*models.Product, string, error) {
	for _, p := range s {
		product, err := p.FindByID(ctx, id)
		if err == nil {
			return product, p.Name, nil
		}
		if !errors.Is(err, docstore.ErrNotFound) {
			return nil, "", fmt.Errorf("partition %s: %w", p.Name, err)
		}
	}
	return nil, "", docstore.ErrNotFound
}

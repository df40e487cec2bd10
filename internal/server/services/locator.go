// Package services contains server-side business logic: product location,
// filtered search, catalog listing, accounts and carts.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/logging"
	"github.com/dmitrijs2005/electro/internal/server/config"
	"github.com/dmitrijs2005/electro/internal/server/models"
	"github.com/dmitrijs2005/electro/internal/server/repositories/products"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
)

// Locator finds a product by identifier across catalog partitions. Each
// lookup flavour scans its own ordered partition set; the first partition
// holding the identifier wins.
type Locator struct {
	repomanager repomanager.RepositoryManager
	lookup      products.PartitionSet
	detail      products.PartitionSet
	canonical   products.Partition
	logger      logging.Logger
}

// NewLocator builds the partition sets named in cfg.
func NewLocator(m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) (*Locator, error) {
	lookup, err := m.Partitions(cfg.LookupOrder)
	if err != nil {
		return nil, fmt.Errorf("lookup partitions: %w", err)
	}
	detail, err := m.Partitions(cfg.DetailOrder)
	if err != nil {
		return nil, fmt.Errorf("detail partitions: %w", err)
	}
	canonical, err := canonicalPartition(m, cfg)
	if err != nil {
		return nil, err
	}
	return &Locator{
		repomanager: m,
		lookup:      lookup,
		detail:      detail,
		canonical:   canonical,
		logger:      l.With("module", "locator"),
	}, nil
}

func canonicalPartition(m repomanager.RepositoryManager, cfg *config.Config) (products.Partition, error) {
	set, err := m.Partitions([]string{cfg.CanonicalPartition})
	if err != nil {
		return products.Partition{}, fmt.Errorf("canonical partition: %w", err)
	}
	return set[0], nil
}

// Locate returns the first product stored under id in lookup order. The
// identifier is not validated; an unknown one is common.ErrNotFound.
func (l *Locator) Locate(ctx context.Context, id string) (*models.Product, error) {
	product, partition, err := l.lookup.FindFirst(ctx, id)
	if err != nil {
		return nil, locateError("Locator.Locate", id, err)
	}
	l.logger.Debug(ctx, "Product located", "id", id, "partition", partition)
	return product, nil
}

// LocateWithRelated validates id, finds it in detail order and attaches every
// canonical-partition product sharing its category. A match without a
// category gets no related products.
func (l *Locator) LocateWithRelated(ctx context.Context, id string) (*models.ProductDetail, error) {
	if !docstore.ValidID(id) {
		return nil, common.ErrInvalidIdentifier
	}

	product, partition, err := l.detail.FindFirst(ctx, id)
	if err != nil {
		return nil, locateError("Locator.LocateWithRelated", id, err)
	}
	l.logger.Debug(ctx, "Product located", "id", id, "partition", partition)

	related := []*models.Product{}
	if product.HasCategory() {
		related, err = l.canonical.Find(ctx, docstore.Where(docstore.Eq(models.FieldCategory, product.Category)))
		if err != nil {
			return nil, common.Internal("Locator.LocateWithRelated", err)
		}
	}

	return &models.ProductDetail{Product: product, RelatedProducts: related}, nil
}

// LocateIn validates id and looks it up in the single named partition.
func (l *Locator) LocateIn(ctx context.Context, partition, id string) (*models.Product, error) {
	if !docstore.ValidID(id) {
		return nil, common.ErrInvalidIdentifier
	}

	set, err := l.repomanager.Partitions([]string{partition})
	if err != nil {
		return nil, common.Internal("Locator.LocateIn", err)
	}

	product, err := set[0].FindByID(ctx, id)
	if err != nil {
		return nil, locateError("Locator.LocateIn", id, err)
	}
	return product, nil
}

func locateError(op, id string, err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return fmt.Errorf("%w: product %s", common.ErrNotFound, id)
	}
	return common.Internal(op, err)
}

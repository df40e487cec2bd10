package services

import (
	"context"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/models"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
)

// CatalogService serves whole partitions.
type CatalogService struct {
	repomanager repomanager.RepositoryManager
}

func NewCatalogService(m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{repomanager: m}
}

// List returns every product of partition in insertion order.
func (s *CatalogService) List(ctx context.Context, partition string) ([]*models.Product, error) {
	set, err := s.repomanager.Partitions([]string{partition})
	if err != nil {
		return nil, common.Internal("CatalogService.List", err)
	}
	out, err := set[0].Find(ctx, docstore.Filter{})
	if err != nil {
		return nil, common.Internal("CatalogService.List", err)
	}
	return out, nil
}

package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_List(t *testing.T) {
	m := newManager(t)
	seed(t, m, "bestSells", docstore.Document{"name": "a"}, docstore.Document{"name": "b"})
	seed(t, m, "bestDeals", docstore.Document{"name": "c"})

	s := NewCatalogService(m)

	got, err := s.List(context.Background(), "bestSells")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names(got))

	got, err = s.List(context.Background(), "featured")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogService_List_StoreError(t *testing.T) {
	_, err := NewCatalogService(brokenManager{}).List(context.Background(), "bestSells")
	assert.ErrorIs(t, err, common.ErrInternal)
}

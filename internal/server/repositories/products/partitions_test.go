package products

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s docstore.Store, partition string, docs ...docstore.Document) {
	t.Helper()
	for _, d := range docs {
		_, err := s.Collection(partition).InsertOne(context.Background(), d)
		require.NoError(t, err)
	}
}

func TestNewPartitionSet_Validation(t *testing.T) {
	s := docstore.NewMemoryStore()

	_, err := NewPartitionSet(s, nil)
	assert.ErrorIs(t, err, ErrNoPartitions)

	_, err = NewPartitionSet(s, []string{"a", "b", "a"})
	assert.ErrorIs(t, err, ErrDuplicatePartition)

	set, err := NewPartitionSet(s, []string{"featured", "onSell"})
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "featured", set[0].Name)
	assert.Equal(t, "onSell", set[1].Name)
}

func TestPartitionSet_FindFirst_PriorityOrder(t *testing.T) {
	s := docstore.NewMemoryStore()
	seed(t, s, "featured", docstore.Document{docstore.IDField: "shared", "name": "featured copy"})
	seed(t, s, "onSell", docstore.Document{docstore.IDField: "shared", "name": "on sale copy"},
		docstore.Document{docstore.IDField: "only-sale", "name": "sale only"})

	set, err := NewPartitionSet(s, []string{"featured", "onSell"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		p, from, err := set.FindFirst(context.Background(), "shared")
		require.NoError(t, err)
		assert.Equal(t, "featured", from)
		name, _ := p.Attribute("name")
		assert.Equal(t, "featured copy", name)
	}

	p, from, err := set.FindFirst(context.Background(), "only-sale")
	require.NoError(t, err)
	assert.Equal(t, "onSell", from)
	assert.Equal(t, "only-sale", p.ID)

	reversed, err := NewPartitionSet(s, []string{"onSell", "featured"})
	require.NoError(t, err)
	p, _, err = reversed.FindFirst(context.Background(), "shared")
	require.NoError(t, err)
	name, _ := p.Attribute("name")
	assert.Equal(t, "on sale copy", name)

	_, _, err = set.FindFirst(context.Background(), "nowhere")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

type failingCollection struct {
	docstore.Collection
	err error
}

func (f failingCollection) FindOne(context.Context, string) (docstore.Document, error) {
	return nil, f.err
}

func TestPartitionSet_FindFirst_StoreErrorStopsScan(t *testing.T) {
	boom := errors.New("db down")
	mem := docstore.NewMemoryStore()
	seed(t, mem, "later", docstore.Document{docstore.IDField: "x"})

	set := PartitionSet{
		NewPartition("broken", failingCollection{err: boom}),
		NewPartition("later", mem.Collection("later")),
	}

	_, _, err := set.FindFirst(context.Background(), "x")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, docstore.ErrNotFound)
}

func TestPartition_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	set, err := NewPartitionSet(docstore.NewMemoryStore(), []string{"AllProducts"})
	require.NoError(t, err)

	id, err := set[0].Insert(ctx, docstore.Document{"category": "tv", "price": 300.0})
	require.NoError(t, err)
	assert.True(t, docstore.ValidID(id))

	p, err := set[0].FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tv", p.Category)
	assert.Equal(t, 300.0, p.Price)
}

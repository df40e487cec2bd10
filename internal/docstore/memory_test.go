package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCollection_InsertFindOne(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("products")

	id, err := c.InsertOne(ctx, Document{"name": "phone", "price": 10})
	require.NoError(t, err)
	assert.True(t, ValidID(id))

	doc, err := c.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID())
	assert.Equal(t, "phone", doc["name"])
	assert.Equal(t, float64(10), doc["price"], "numbers are normalized to float64")

	_, err = c.FindOne(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_ExplicitIDAndDuplicate(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("featured")

	id, err := c.InsertOne(ctx, Document{IDField: "p-1", "name": "a"})
	require.NoError(t, err)
	assert.Equal(t, "p-1", id)

	_, err = c.InsertOne(ctx, Document{IDField: "p-1", "name": "b"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryCollection_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("products")

	src := Document{"name": "phone"}
	id, err := c.InsertOne(ctx, src)
	require.NoError(t, err)
	src["name"] = "changed"

	doc, err := c.FindOne(ctx, id)
	require.NoError(t, err)
	doc["name"] = "mutated"

	again, err := c.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "phone", again["name"])
}

func TestMemoryCollection_FindKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("products")

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := c.InsertOne(ctx, Document{IDField: name, "category": "x"})
		require.NoError(t, err)
	}
	require.NoError(t, c.DeleteOne(ctx, "b"))

	docs, err := c.Find(ctx, Filter{})
	require.NoError(t, err)

	var ids []string
	for _, d := range docs {
		ids = append(ids, d.ID())
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)

	// index is rebuilt after delete
	doc, err := c.FindOne(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "d", doc.ID())
}

func TestMemoryCollection_UpdateOne(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("cart")

	id, err := c.InsertOne(ctx, Document{"price": 50, "quantity": 3, "name": "cable"})
	require.NoError(t, err)

	require.NoError(t, c.UpdateOne(ctx, id, Document{"quantity": 5, IDField: "ignored"}))

	doc, err := c.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(5), doc["quantity"])
	assert.Equal(t, "cable", doc["name"])
	assert.Equal(t, id, doc.ID())

	assert.ErrorIs(t, c.UpdateOne(ctx, "missing", Document{"quantity": 1}), ErrNotFound)
}

func TestMemoryCollection_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("cart")

	id, err := c.InsertOne(ctx, Document{"name": "x"})
	require.NoError(t, err)

	require.NoError(t, c.DeleteOne(ctx, id))
	assert.ErrorIs(t, c.DeleteOne(ctx, id), ErrNotFound)
}

func TestMemoryStore_UniqueField(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(WithUniqueField("users", "email"))
	users := s.Collection("users")

	_, err := users.InsertOne(ctx, Document{"email": "a@x.io"})
	require.NoError(t, err)
	_, err = users.InsertOne(ctx, Document{"email": "a@x.io"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// other collections are unaffected
	_, err = s.Collection("cart").InsertOne(ctx, Document{"email": "a@x.io"})
	assert.NoError(t, err)
	_, err = s.Collection("cart").InsertOne(ctx, Document{"email": "a@x.io"})
	assert.NoError(t, err)
}

func TestMemoryStore_SameCollectionHandle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Collection("p").InsertOne(ctx, Document{"a": "b"})
	require.NoError(t, err)

	_, err = s.Collection("p").FindOne(ctx, id)
	assert.NoError(t, err)
	_, err = s.Collection("q").FindOne(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCollection_CancelledContext(t *testing.T) {
	c := NewMemoryStore().Collection("p")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Find(ctx, Filter{})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.InsertOne(ctx, Document{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, NewMemoryStore().Ping(ctx), context.Canceled)
}

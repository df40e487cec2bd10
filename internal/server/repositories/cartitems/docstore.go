package cartitems

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/server/models"
)

type DocstoreRepository struct {
	c docstore.Collection
}

func NewDocstoreRepository(c docstore.Collection) *DocstoreRepository {
	return &DocstoreRepository{c: c}
}

func (r *DocstoreRepository) Create(ctx context.Context, item *models.CartItem) (string, error) {
	id, err := r.c.InsertOne(ctx, item.Document())
	if err != nil {
		return "", fmt.Errorf("error inserting cart item: %w", err)
	}
	item.ID = id
	return id, nil
}

func (r *DocstoreRepository) ListByOwner(ctx context.Context, email string) ([]*models.CartItem, error) {
	docs, err := r.c.Find(ctx, docstore.Where(docstore.Eq(models.FieldEmail, email)))
	if err != nil {
		return nil, fmt.Errorf("error listing cart items: %w", err)
	}
	items := make([]*models.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, models.CartItemFromDocument(d))
	}
	return items, nil
}

func (r *DocstoreRepository) Get(ctx context.Context, id string) (*models.CartItem, error) {
	doc, err := r.c.FindOne(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "error reading cart item")
	}
	return models.CartItemFromDocument(doc), nil
}

func (r *DocstoreRepository) SetQuantity(ctx context.Context, id string, quantity int, total float64) error {
	err := r.c.UpdateOne(ctx, id, docstore.Document{
		models.FieldQuantity:   quantity,
		models.FieldTotalPrice: total,
	})
	if err != nil {
		return mapNotFound(err, "error updating cart item")
	}
	return nil
}

func (r *DocstoreRepository) Delete(ctx context.Context, id string) error {
	if err := r.c.DeleteOne(ctx, id); err != nil {
		return mapNotFound(err, "error deleting cart item")
	}
	return nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return common.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

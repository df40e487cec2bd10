// Package cartitems stores cart line items in a document store collection.
package cartitems

import (
	"context"

	"github.com/dmitrijs2005/electro/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.CartItem) (string, error)
	ListByOwner(ctx context.Context, email string) ([]*models.CartItem, error)
	Get(ctx context.Context, id string) (*models.CartItem, error)
	// SetQuantity writes quantity and total together.
	SetQuantity(ctx context.Context, id string, quantity int, total float64) error
	Delete(ctx context.Context, id string) error
}

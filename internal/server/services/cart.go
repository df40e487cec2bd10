package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/server/auth"
	"github.com/dmitrijs2005/electro/internal/server/models"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
)

// AddItemInput is a product snapshot put into a cart. Snapshot carries the
// display attributes to copy; Price is the unit price.
type AddItemInput struct {
	ProductID string
	Snapshot  map[string]any
	Price     float64
	Quantity  int
}

// CartService manages cart line items. Totals are always price × quantity
// of the stored unit price.
type CartService struct {
	repomanager repomanager.RepositoryManager
}

func NewCartService(m repomanager.RepositoryManager) *CartService {
	return &CartService{repomanager: m}
}

// Add stores a line item owned by owner and returns its identifier.
func (s *CartService) Add(ctx context.Context, owner auth.Identity, in AddItemInput) (string, error) {
	if in.Quantity < 1 {
		return "", fmt.Errorf("%w: quantity must be at least 1", common.ErrInvalidInput)
	}
	if in.Price < 0 {
		return "", fmt.Errorf("%w: price must not be negative", common.ErrInvalidInput)
	}

	item := models.NewCartItem(owner.Email, in.ProductID, in.Snapshot, in.Price, in.Quantity)

	id, err := s.repomanager.CartItems().Create(ctx, item)
	if err != nil {
		return "", common.Internal("CartService.Add", err)
	}
	return id, nil
}

// List returns the caller's line items.
func (s *CartService) List(ctx context.Context, owner auth.Identity) ([]*models.CartItem, error) {
	items, err := s.repomanager.CartItems().ListByOwner(ctx, owner.Email)
	if err != nil {
		return nil, common.Internal("CartService.List", err)
	}
	return items, nil
}

// UpdateQuantity sets a new quantity and recomputes the total from the unit
// price stored with the item. The read and the write are not atomic.
func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", common.ErrInvalidInput)
	}

	repo := s.repomanager.CartItems()

	item, err := repo.Get(ctx, id)
	if err != nil {
		return nil, cartError("CartService.UpdateQuantity", err)
	}

	item.SetQuantity(quantity)
	if err := repo.SetQuantity(ctx, id, item.Quantity, item.TotalPrice); err != nil {
		return nil, cartError("CartService.UpdateQuantity", err)
	}
	return item, nil
}

// Remove deletes a line item. Removing a missing item is common.ErrNotFound.
func (s *CartService) Remove(ctx context.Context, id string) error {
	if err := s.repomanager.CartItems().Delete(ctx, id); err != nil {
		return cartError("CartService.Remove", err)
	}
	return nil
}

func cartError(op string, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return err
	}
	return common.Internal(op, err)
}

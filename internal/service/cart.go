package service

import (
	"context"
	"fmt"

	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userID uint) ([]models.CartLine, error) {
	return s.Repo.CartLines(ctx, userID)
}

// AddToCart merges the quantity delta into the caller's line for the product.
// Quantities below 1 are clamped up, keeping the quantity >= 1 invariant.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int64) (*models.CartItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product id required: %w", ErrValidation)
	}
	if quantity < 1 {
		quantity = 1
	}

	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID uint, quantity int64) error {
	if productID == 0 {
		return fmt.Errorf("product id required: %w", ErrValidation)
	}
	if quantity < 1 {
		quantity = 1
	}
	return s.Repo.SetCartQuantity(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID uint) error {
	if productID == 0 {
		return fmt.Errorf("product id required: %w", ErrValidation)
	}
	return s.Repo.RemoveFromCart(ctx, userID, productID)
}

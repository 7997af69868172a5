package service

import (
	"context"
	"fmt"

	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID uint) ([]models.WishlistLine, error) {
	return s.Repo.WishlistLines(ctx, userID)
}

// AddToWishlist is idempotent: adding a product already on the list succeeds
// without touching the existing row.
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID uint) (*models.WishlistItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product id required: %w", ErrValidation)
	}

	item := models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.Repo.AddToWishlist(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uint) error {
	if productID == 0 {
		return fmt.Errorf("product id required: %w", ErrValidation)
	}
	return s.Repo.RemoveFromWishlist(ctx, userID, productID)
}

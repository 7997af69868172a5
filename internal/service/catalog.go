package service

import (
	"context"
	"fmt"

	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, prod *models.Product) error {
	if prod.Name == "" {
		return fmt.Errorf("name required: %w", ErrValidation)
	}
	prod.Reviews = 0
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, prod *models.Product) error {
	return s.Repo.UpdateProduct(ctx, prod)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProduct(ctx, id)
}

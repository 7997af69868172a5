package repo

import (
	"context"

	"github.com/shopdeck/storefront/internal/models"
)

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

// UpdateProduct is a blind update keyed by id; touching zero rows is not an
// error. Review counts are never written from the API.
func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", prod.ID).
		Updates(map[string]any{
			"name":        prod.Name,
			"description": prod.Description,
			"price":       prod.Price,
			"image":       prod.Image,
		}).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
}

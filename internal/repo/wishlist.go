package repo

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/shopdeck/storefront/internal/models"
)

func (r *GormRepo) WishlistLines(ctx context.Context, userID uint) ([]models.WishlistLine, error) {
	lines := make([]models.WishlistLine, 0)
	err := r.DB.WithContext(ctx).
		Table("wishlist_items").
		Select("products.id AS id, products.name AS name, products.description AS description, products.price AS price, products.reviews AS reviews, products.image AS image, wishlist_items.id AS wishlist_id").
		Joins("JOIN products ON products.id = wishlist_items.product_id").
		Where("wishlist_items.user_id = ?", userID).
		Order("wishlist_items.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToWishlist inserts the (user, product) pair; a duplicate add is a silent
// no-op thanks to the composite unique index.
func (r *GormRepo) AddToWishlist(ctx context.Context, item *models.WishlistItem) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(item).Error
}

func (r *GormRepo) RemoveFromWishlist(ctx context.Context, userID, productID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopdeck/storefront/internal/models"
)

func (r *GormRepo) CartLines(ctx context.Context, userID uint) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0)
	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("products.id AS id, products.name AS name, products.description AS description, products.price AS price, products.reviews AS reviews, products.image AS image, cart_items.quantity AS quantity, cart_items.id AS cart_item_id").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart merges the delta into an existing (user, product) row or creates
// one, inside a single transaction so two adds never lose an increment.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(item).Error
		}
		return tx.Create(item).Error
	})
}

// SetCartQuantity overwrites the quantity for the (user, product) row. It does
// not create a row; updating an absent one affects zero rows and succeeds.
func (r *GormRepo) SetCartQuantity(ctx context.Context, userID, productID uint, quantity int64) error {
	return r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

// RemoveFromCart deletes the row; deleting an absent row is a no-op.
func (r *GormRepo) RemoveFromCart(ctx context.Context, userID, productID uint) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

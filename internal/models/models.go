package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Price is the integer amount in the smallest currency unit.
type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Reviews     int64  `json:"reviews"`
	Image       string `json:"image"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                         json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null"   json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null"   json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                     json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null"   json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null"   json:"product_id"`
	Quantity  int64     `gorm:"not null;check:quantity>0"                    json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is the read model for GET /api/cart: the product row joined with
// the caller's cart row.
type CartLine struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Reviews     int64  `json:"reviews"`
	Image       string `json:"image"`
	Quantity    int64  `json:"quantity"`
	CartItemID  uint   `json:"cart_item_id"`
}

// WishlistLine is the read model for GET /api/wishlist.
type WishlistLine struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Reviews     int64  `json:"reviews"`
	Image       string `json:"image"`
	WishlistID  uint   `json:"wishlist_id"`
}

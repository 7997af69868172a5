package client

// Wire types mirroring the server's JSON bodies, so importers of this package
// never need types from the server's internal packages.

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Product struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Reviews     int64  `json:"reviews"`
	Image       string `json:"image"`
}

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

type WishlistLine struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Reviews     int64  `json:"reviews"`
	Image       string `json:"image"`
	WishlistID  uint   `json:"wishlist_id"`
}

package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopdeck/storefront/internal/metrics"
	"github.com/shopdeck/storefront/internal/middleware/auth"
)

type Deps struct {
	Guard    *auth.Guard
	Auth     *AuthHTTP
	Products *ProductHTTP
	Cart     *CartHTTP
	Wishlist *WishlistHTTP
	Search   *SearchHTTP // nil unless elasticsearch is configured
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.POST("/register", d.Auth.Register)
	api.POST("/login", d.Auth.Login)
	api.GET("/me", d.Auth.Me, d.Guard.RequireUser)

	api.GET("/products", d.Products.GetProducts)
	if d.Search != nil {
		api.GET("/products/search", d.Search.Search)
	}
	api.POST("/products", d.Products.CreateProduct, d.Guard.RequireAdmin)
	api.PUT("/products/:id", d.Products.UpdateProduct, d.Guard.RequireAdmin)
	api.DELETE("/products/:id", d.Products.DeleteProduct, d.Guard.RequireAdmin)

	wishlist := api.Group("/wishlist", d.Guard.RequireUser)
	wishlist.GET("", d.Wishlist.GetWishlist)
	wishlist.POST("", d.Wishlist.AddToWishlist)
	wishlist.DELETE("/:productId", d.Wishlist.RemoveFromWishlist)

	cart := api.Group("/cart", d.Guard.RequireUser)
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddToCart)
	cart.PUT("/:productId", d.Cart.SetQuantity)
	cart.DELETE("/:productId", d.Cart.RemoveFromCart)
}

package api

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Handlers groups every storefront handler for route registration.
type Handlers struct {
	Product  *ProductHandler
	Cart     *CartHandler
	Favorite *FavoriteHandler
	Theme    *ThemeHandler
	Checkout *CheckoutHandler
	Auth     *AuthHandler
}

// Register mounts the storefront routes on e. Shopper state routes run behind
// SessionMiddleware.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET("/products", h.Product.ListProducts)
	e.GET("/products/warmup-cache", h.Product.PreWarmupCache)
	e.GET("/products/:id", h.Product.GetProduct)
	e.GET("/categories", h.Product.ListCategories)
	e.GET("/greeting", h.Theme.Greeting)
	e.GET("/auth/callback", h.Auth.Callback)

	s := e.Group("", SessionMiddleware())

	s.GET("/cart", h.Cart.GetCart)
	s.DELETE("/cart", h.Cart.ClearCart)
	s.POST("/cart/items", h.Cart.AddItem)
	s.PUT("/cart/items/:id", h.Cart.UpdateQuantity)
	s.DELETE("/cart/items/:id", h.Cart.RemoveItem)

	s.GET("/favorites", h.Favorite.GetFavorites)
	s.DELETE("/favorites", h.Favorite.ClearFavorites)
	s.GET("/favorites/:id", h.Favorite.IsFavorite)
	s.POST("/favorites/:id/toggle", h.Favorite.ToggleFavorite)

	s.GET("/theme", h.Theme.GetTheme)
	s.PUT("/theme", h.Theme.SetTheme)
	s.POST("/theme/toggle", h.Theme.ToggleTheme)
	s.POST("/theme/initialize", h.Theme.InitializeTheme)

	s.POST("/checkout", h.Checkout.Checkout)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "storefront-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
}

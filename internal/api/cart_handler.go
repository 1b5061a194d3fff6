package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/service"
)

type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new instance of CartHandler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart --> GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.cartService.GetCart(c.Request().Context(), SessionID(c))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cart)
}

// AddItem --> POST /cart/items
func (h *CartHandler) AddItem(c echo.Context) error {
	item := entity.CartItemInput{}
	if err := c.Bind(&item); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" || item.Price < 0 {
		return c.JSON(400, map[string]string{"error": "Item needs an id, a name and a price"})
	}

	cart, err := h.cartService.AddItem(c.Request().Context(), SessionID(c), item)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cart)
}

// UpdateQuantity --> PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	update := struct {
		Quantity int `json:"quantity"`
	}{}
	if err := c.Bind(&update); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	cart, err := h.cartService.UpdateQuantity(c.Request().Context(), SessionID(c), c.Param("id"), update.Quantity)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cart)
}

// RemoveItem --> DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.cartService.RemoveItem(c.Request().Context(), SessionID(c), c.Param("id"))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cart)
}

// ClearCart --> DELETE /cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	cart, err := h.cartService.ClearCart(c.Request().Context(), SessionID(c))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, cart)
}

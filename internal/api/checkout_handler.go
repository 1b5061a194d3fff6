package api

import (
	"github.com/labstack/echo/v4"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/service"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new instance of CheckoutHandler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout composes the WhatsApp order and empties the cart --> POST /checkout
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	req := entity.CheckoutRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}
	req.IdempotentKey = c.Request().Header.Get("Idempotent-Key")

	result, err := h.checkoutService.Checkout(c.Request().Context(), SessionID(c), req)
	if err != nil {
		if service.IsCheckoutRejection(err) {
			return c.JSON(400, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, result)
}

package api

import (
	"github.com/labstack/echo/v4"

	"github.com/alterach/toko-kopi-khaleed/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Callback completes the provider sign-in --> /auth/callback?token=
func (h *AuthHandler) Callback(c echo.Context) error {
	target := h.authService.CallbackRedirect(c.Request().Context(), c.QueryParam("token"))
	return c.Redirect(302, target)
}

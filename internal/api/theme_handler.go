package api

import (
	"github.com/labstack/echo/v4"

	"github.com/alterach/toko-kopi-khaleed/internal/service"
)

type ThemeHandler struct {
	themeService *service.ThemeService
}

// NewThemeHandler creates a new instance of ThemeHandler
func NewThemeHandler(themeService *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// GetTheme --> GET /theme
func (h *ThemeHandler) GetTheme(c echo.Context) error {
	theme, err := h.themeService.GetTheme(c.Request().Context(), SessionID(c))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, theme)
}

// SetTheme --> PUT /theme
func (h *ThemeHandler) SetTheme(c echo.Context) error {
	req := struct {
		IsDarkMode *bool `json:"is_dark_mode"`
	}{}
	if err := c.Bind(&req); err != nil || req.IsDarkMode == nil {
		return c.JSON(400, map[string]string{"error": "is_dark_mode is required"})
	}

	theme, err := h.themeService.SetTheme(c.Request().Context(), SessionID(c), *req.IsDarkMode)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, theme)
}

// ToggleTheme --> POST /theme/toggle
func (h *ThemeHandler) ToggleTheme(c echo.Context) error {
	theme, err := h.themeService.ToggleTheme(c.Request().Context(), SessionID(c))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, theme)
}

// InitializeTheme is called on app load --> POST /theme/initialize
func (h *ThemeHandler) InitializeTheme(c echo.Context) error {
	theme, err := h.themeService.InitializeTheme(c.Request().Context(), SessionID(c))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, theme)
}

// Greeting --> GET /greeting
func (h *ThemeHandler) Greeting(c echo.Context) error {
	return c.JSON(200, h.themeService.Greeting())
}

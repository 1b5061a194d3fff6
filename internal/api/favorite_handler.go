package api

import (
	"github.com/labstack/echo/v4"

	"github.com/alterach/toko-kopi-khaleed/internal/service"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new instance of FavoriteHandler
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// GetFavorites --> GET /favorites
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	ids, err := h.favoriteService.GetFavorites(c.Request().Context(), SessionID(c))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]interface{}{"favorites": ids})
}

// IsFavorite --> GET /favorites/:id
func (h *FavoriteHandler) IsFavorite(c echo.Context) error {
	productID := c.Param("id")
	fav, err := h.favoriteService.IsFavorite(c.Request().Context(), SessionID(c), productID)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]interface{}{"product_id": productID, "is_favorite": fav})
}

// ToggleFavorite --> POST /favorites/:id/toggle
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	ids, fav, err := h.favoriteService.ToggleFavorite(c.Request().Context(), SessionID(c), c.Param("id"))
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]interface{}{"favorites": ids, "is_favorite": fav})
}

// ClearFavorites --> DELETE /favorites
func (h *FavoriteHandler) ClearFavorites(c echo.Context) error {
	if err := h.favoriteService.ClearFavorites(c.Request().Context(), SessionID(c)); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
	return c.JSON(200, map[string]interface{}{"favorites": []string{}})
}

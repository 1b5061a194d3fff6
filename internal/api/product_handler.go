package api

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/service"
)

type ProductHandler struct {
	catalog *service.CatalogService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListProducts lists available products --> /products?category=&q=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	category := entity.Category(c.QueryParam("category"))
	if category != "" && !category.Valid() {
		return c.JSON(400, map[string]string{"error": "Invalid category"})
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), service.ProductFilter{
		Category: category,
		Search:   c.QueryParam("q"),
	})
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, products)
}

// GetProduct gets one product --> /products/:id
// Anything but a hit sends the client back to the catalog.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(404, map[string]string{"error": "Product not found", "redirect": "/"})
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return c.JSON(404, map[string]string{"error": "Product not found", "redirect": "/"})
	}

	return c.JSON(200, product)
}

// ListCategories lists the menu categories --> /categories
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories := make([]map[string]string, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		categories = append(categories, map[string]string{
			"id":    string(category),
			"label": category.Label(),
		})
	}
	return c.JSON(200, categories)
}

// PreWarmupCache pre-warms the cache with product data --> /products/warmup-cache
func (h *ProductHandler) PreWarmupCache(c echo.Context) error {
	if err := h.catalog.PreWarmCache(c.Request().Context()); err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Cache pre-warmed"})
}

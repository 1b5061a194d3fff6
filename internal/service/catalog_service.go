package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/text/cases"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
)

// CatalogReader is the external product data service.
type CatalogReader interface {
	ListAvailable(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
}

// ProductFilter narrows the catalog. Zero fields match everything.
type ProductFilter struct {
	Category entity.Category
	Search   string
}

const availableProductsKey = "products:available"

func productKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

// CatalogService reads the catalog through a Redis cache.
type CatalogService struct {
	reader CatalogReader
	rdb    *redis.Client
	ttl    time.Duration
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(reader CatalogReader, rdb *redis.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{
		reader: reader,
		rdb:    rdb,
		ttl:    ttl,
	}
}

// ListProducts returns available products, oldest first, narrowed by filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	var products []entity.Product
	if s.readCache(ctx, availableProductsKey, &products) {
		return FilterProducts(products, filter), nil
	}

	products, err := s.reader.ListAvailable(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching products")
		return nil, err
	}
	s.writeCache(ctx, availableProductsKey, products)

	return FilterProducts(products, filter), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	var product entity.Product
	if s.readCache(ctx, productKey(id), &product) {
		return &product, nil
	}

	p, err := s.reader.GetProduct(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching product %d", id)
		return nil, err
	}
	s.writeCache(ctx, productKey(id), p)

	return p, nil
}

// PreWarmCache loads the available list and every product entry into the cache.
func (s *CatalogService) PreWarmCache(ctx context.Context) error {
	products, err := s.reader.ListAvailable(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting products")
		return err
	}

	s.writeCache(ctx, availableProductsKey, products)
	for i := range products {
		s.writeCache(ctx, productKey(products[i].ID), &products[i])
	}

	logger.Info().Msgf("Pre-warmed cache with %d products", len(products))
	return nil
}

// Invalidate drops the cached list and the entry for productID.
func (s *CatalogService) Invalidate(ctx context.Context, productID int) error {
	err := s.rdb.Del(ctx, availableProductsKey, productKey(productID)).Err()
	if err != nil {
		logger.Error().Err(err).Msgf("Error invalidating cache for product %d", productID)
		return err
	}
	return nil
}

// readCache reports a hit. Cache failures are logged and treated as misses.
func (s *CatalogService) readCache(ctx context.Context, key string, dst interface{}) bool {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error reading %s from cache", key)
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		logger.Error().Err(err).Msgf("Error unmarshalling %s", key)
		return false
	}
	return true
}

func (s *CatalogService) writeCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling %s", key)
		return
	}

	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error setting %s in cache", key)
	}
}

// FilterProducts keeps products in filter.Category whose name or description
// contains filter.Search, ignoring case.
func FilterProducts(products []entity.Product, filter ProductFilter) []entity.Product {
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(filter.Search))

	out := []entity.Product{}
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(fold.String(p.Name), search) &&
			!strings.Contains(fold.String(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

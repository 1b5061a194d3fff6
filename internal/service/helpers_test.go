package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/repository"
	"github.com/alterach/toko-kopi-khaleed/internal/sharding"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func newTestState(t *testing.T) (*miniredis.Miniredis, *repository.StateRepository, *sharding.SessionLocks) {
	t.Helper()

	mr, client := setupTestRedis(t)
	return mr, repository.NewStateRepository(client, 0), sharding.NewSessionLocks(sharding.NewShardRouter(4))
}

// fakeCatalog is an in-memory CatalogReader that counts calls.
type fakeCatalog struct {
	mu        sync.Mutex
	products  []entity.Product
	listCalls int
	getCalls  int
	err       error
}

func (f *fakeCatalog) ListAvailable(ctx context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Product
	for _, p := range f.products {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

var errCatalogDown = errors.New("catalog unavailable")

func menu() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Cold Brew", Category: entity.CategoryCoffee, Price: 52000, Description: "Diseduh dingin 12 jam", IsAvailable: true},
		{ID: 2, Name: "French Fries", Category: entity.CategorySnack, Price: 18000, Description: "Kentang goreng renyah", IsAvailable: true},
		{ID: 3, Name: "Cheese Fries", Category: entity.CategorySnack, Price: 23000, IsAvailable: true},
		{ID: 4, Name: "Pisang Goreng", Category: entity.CategorySnack, Price: 15000, Description: "Served with FRIES-style salt", IsAvailable: true},
		{ID: 5, Name: "Nasi Goreng", Category: entity.CategoryHeavyMeal, Price: 35000, Description: "with fries on the side", IsAvailable: true},
		{ID: 6, Name: "Matcha Latte", Category: entity.CategoryNonCoffee, Price: 30000, IsAvailable: false},
	}
}

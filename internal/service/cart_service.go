package service

import (
	"context"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/locale"
	"github.com/alterach/toko-kopi-khaleed/internal/repository"
	"github.com/alterach/toko-kopi-khaleed/internal/sharding"
	"github.com/alterach/toko-kopi-khaleed/internal/store"
)

// CartService loads a shopper's cart, applies one mutation and writes it back.
type CartService struct {
	state *repository.StateRepository
	locks *sharding.SessionLocks
}

// NewCartService creates a new instance of CartService.
func NewCartService(state *repository.StateRepository, locks *sharding.SessionLocks) *CartService {
	return &CartService{state: state, locks: locks}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*entity.Cart, error) {
	return s.mutate(ctx, sessionID, nil)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, item entity.CartItemInput) (*entity.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *store.Cart) {
		cart.AddItem(item)
	})
}

// UpdateQuantity sets a line's quantity, raising anything below 1 to 1.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(ctx, sessionID, func(cart *store.Cart) {
		cart.UpdateQuantity(id, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, id string) (*entity.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *store.Cart) {
		cart.RemoveItem(id)
	})
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) (*entity.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *store.Cart) {
		cart.Clear()
	})
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(cart *store.Cart)) (*entity.Cart, error) {
	var view *entity.Cart
	err := s.withCart(ctx, sessionID, func(cart *store.Cart) error {
		if fn != nil {
			fn(cart)
		}
		view = cartView(cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// withCart runs fn against the shopper's cart while holding the session lock.
// Mutations made by fn are persisted before withCart returns.
func (s *CartService) withCart(ctx context.Context, sessionID string, fn func(cart *store.Cart) error) error {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	items, err := loadState[[]entity.CartItem](ctx, s.state, store.CartNamespace, sessionID)
	if err != nil {
		return err
	}

	p := newPersister[[]entity.CartItem](ctx, s.state, store.CartNamespace, sessionID)
	cart := store.NewCart(items, p.hook())
	if err := fn(cart); err != nil {
		return err
	}
	return p.err
}

func cartView(cart *store.Cart) *entity.Cart {
	total := cart.TotalPrice()
	return &entity.Cart{
		Items:      cart.Items(),
		TotalPrice: total,
		TotalItems: cart.TotalItems(),
		Formatted:  locale.FormatRupiah(total),
	}
}

package service

import (
	"context"

	"github.com/alterach/toko-kopi-khaleed/internal/repository"
	"github.com/alterach/toko-kopi-khaleed/internal/sharding"
	"github.com/alterach/toko-kopi-khaleed/internal/store"
)

type FavoriteService struct {
	state *repository.StateRepository
	locks *sharding.SessionLocks
}

// NewFavoriteService creates a new instance of FavoriteService.
func NewFavoriteService(state *repository.StateRepository, locks *sharding.SessionLocks) *FavoriteService {
	return &FavoriteService{state: state, locks: locks}
}

func (s *FavoriteService) GetFavorites(ctx context.Context, sessionID string) ([]string, error) {
	favs, _, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return favs.IDs(), nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, sessionID, productID string) (bool, error) {
	favs, _, err := s.open(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return favs.IsFavorite(productID), nil
}

// ToggleFavorite flips productID's membership and reports whether it is now a favorite.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, sessionID, productID string) ([]string, bool, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	favs, p, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	ids := favs.Toggle(productID)
	if p.err != nil {
		return nil, false, p.err
	}
	return ids, favs.IsFavorite(productID), nil
}

func (s *FavoriteService) ClearFavorites(ctx context.Context, sessionID string) error {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	favs, p, err := s.open(ctx, sessionID)
	if err != nil {
		return err
	}
	favs.Clear()
	return p.err
}

func (s *FavoriteService) open(ctx context.Context, sessionID string) (*store.Favorites, *persister[[]string], error) {
	ids, err := loadState[[]string](ctx, s.state, store.FavoritesNamespace, sessionID)
	if err != nil {
		return nil, nil, err
	}
	p := newPersister[[]string](ctx, s.state, store.FavoritesNamespace, sessionID)
	return store.NewFavorites(ids, p.hook()), p, nil
}

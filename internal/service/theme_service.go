package service

import (
	"context"
	"time"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/locale"
	"github.com/alterach/toko-kopi-khaleed/internal/repository"
	"github.com/alterach/toko-kopi-khaleed/internal/sharding"
	"github.com/alterach/toko-kopi-khaleed/internal/store"
)

// ThemeService keeps each shopper's day/night flag. Night hours are judged in
// the shop's time zone.
type ThemeService struct {
	state *repository.StateRepository
	locks *sharding.SessionLocks
	loc   *time.Location
	now   func() time.Time
}

// NewThemeService creates a new instance of ThemeService. A nil now means time.Now.
func NewThemeService(state *repository.StateRepository, locks *sharding.SessionLocks, loc *time.Location, now func() time.Time) *ThemeService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ThemeService{state: state, locks: locks, loc: loc, now: now}
}

func (s *ThemeService) GetTheme(ctx context.Context, sessionID string) (*entity.Theme, error) {
	return s.apply(ctx, sessionID, nil)
}

// InitializeTheme runs on every app load: night hours promote the theme to dark.
func (s *ThemeService) InitializeTheme(ctx context.Context, sessionID string) (*entity.Theme, error) {
	return s.apply(ctx, sessionID, func(theme *store.Theme) {
		theme.Initialize(s.now().In(s.loc))
	})
}

func (s *ThemeService) ToggleTheme(ctx context.Context, sessionID string) (*entity.Theme, error) {
	return s.apply(ctx, sessionID, func(theme *store.Theme) {
		theme.Toggle()
	})
}

func (s *ThemeService) SetTheme(ctx context.Context, sessionID string, dark bool) (*entity.Theme, error) {
	return s.apply(ctx, sessionID, func(theme *store.Theme) {
		theme.Set(dark)
	})
}

// Greeting is the time-of-day greeting for the shop's current hour.
func (s *ThemeService) Greeting() locale.Greeting {
	return locale.GreetingAt(s.now().In(s.loc))
}

func (s *ThemeService) apply(ctx context.Context, sessionID string, fn func(theme *store.Theme)) (*entity.Theme, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	persisted, err := loadState[bool](ctx, s.state, store.ThemeNamespace, sessionID)
	if err != nil {
		return nil, err
	}

	p := newPersister[bool](ctx, s.state, store.ThemeNamespace, sessionID)
	theme := store.NewTheme(persisted, p.hook())
	if fn != nil {
		fn(theme)
	}
	if p.err != nil {
		return nil, p.err
	}

	return &entity.Theme{IsDarkMode: theme.IsDarkMode(), BodyClass: theme.BodyClass()}, nil
}

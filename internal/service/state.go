package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/alterach/toko-kopi-khaleed/internal/repository"
	"github.com/alterach/toko-kopi-khaleed/internal/store"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// loadState reads a shopper's blob, returning the zero value when none was stored.
func loadState[T any](ctx context.Context, repo *repository.StateRepository, namespace, sessionID string) (T, error) {
	var state T
	if _, err := repo.Load(ctx, namespace, sessionID, &state); err != nil {
		logger.Error().Err(err).Msgf("Error loading %s for session %s", namespace, sessionID)
		return state, err
	}
	return state, nil
}

// persister is the on-change hook handed to a store container. It writes every new
// state through to the repository and remembers the first failure.
type persister[T any] struct {
	ctx       context.Context
	repo      *repository.StateRepository
	namespace string
	sessionID string
	err       error
}

func newPersister[T any](ctx context.Context, repo *repository.StateRepository, namespace, sessionID string) *persister[T] {
	return &persister[T]{ctx: ctx, repo: repo, namespace: namespace, sessionID: sessionID}
}

func (p *persister[T]) hook() store.ChangeFunc[T] {
	return func(state T) {
		if p.err != nil {
			return
		}
		if err := p.repo.Save(p.ctx, p.namespace, p.sessionID, state); err != nil {
			logger.Error().Err(err).Msgf("Error saving %s for session %s", p.namespace, p.sessionID)
			p.err = err
		}
	}
}

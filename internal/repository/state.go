package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// StateRepository is the durable per-shopper storage: one JSON blob per
// namespace and session.
type StateRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStateRepository keeps blobs for ttl after their last write; zero keeps them forever.
func NewStateRepository(rdb *redis.Client, ttl time.Duration) *StateRepository {
	return &StateRepository{rdb: rdb, ttl: ttl}
}

func stateKey(namespace, sessionID string) string {
	return namespace + ":" + sessionID
}

// Load decodes the stored blob into dst. It reports false when nothing was stored.
func (r *StateRepository) Load(ctx context.Context, namespace, sessionID string, dst interface{}) (bool, error) {
	data, err := r.rdb.Get(ctx, stateKey(namespace, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *StateRepository) Save(ctx context.Context, namespace, sessionID string, state interface{}) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, stateKey(namespace, sessionID), data, r.ttl).Err()
}

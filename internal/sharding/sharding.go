package sharding

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

type ShardRouter struct {
	ShardCount int // Number of shards
}

func NewShardRouter(shardCount int) *ShardRouter {
	if shardCount < 1 {
		shardCount = 1
	}
	return &ShardRouter{ShardCount: shardCount}
}

// GetShard hashes key onto a shard index.
func (r *ShardRouter) GetShard(key string) int {
	return int(xxhash.Sum64String(key) % uint64(r.ShardCount))
}

// SessionLocks serializes work per shopper session. Sessions that hash to the same
// stripe share a mutex.
type SessionLocks struct {
	router  *ShardRouter
	stripes []sync.Mutex
}

func NewSessionLocks(router *ShardRouter) *SessionLocks {
	return &SessionLocks{
		router:  router,
		stripes: make([]sync.Mutex, router.ShardCount),
	}
}

// Lock acquires the stripe for sessionID and returns its unlock func.
func (l *SessionLocks) Lock(sessionID string) func() {
	mu := &l.stripes[l.router.GetShard(sessionID)]
	mu.Lock()
	return mu.Unlock
}

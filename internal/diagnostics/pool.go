package diagnostics

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// PoolCache caches assembled candidate pools for the duration of one
// analysis session. Assembling a pool ("all type names visible in this
// compilation") is the expensive step, not scoring it, so callers build a
// cache per session, share it across their worker goroutines, and drop or
// invalidate it when the session's inputs change. It is always an explicit
// object owned by the caller: package-level pool state goes stale across
// unrelated sessions with no way to invalidate it.
type PoolCache struct {
	mu    sync.RWMutex
	pools map[uint64][]string
}

// NewPoolCache creates an empty candidate-pool cache.
func NewPoolCache() *PoolCache {
	return &PoolCache{
		pools: make(map[uint64][]string),
	}
}

// PoolKey fingerprints a pool identity from its scope parts (for example
// category, file, and scope path). Each part is terminated by a NUL byte
// so ("ab","c") and ("a","bc") hash differently.
func PoolKey(parts ...string) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Get returns the cached pool for a key, if present.
func (pc *PoolCache) Get(key uint64) ([]string, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	pool, ok := pc.pools[key]
	return pool, ok
}

// Put stores a pool under a key, replacing any previous pool.
func (pc *PoolCache) Put(key uint64, names []string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.pools[key] = names
}

// GetOrBuild returns the cached pool for a key, building and storing it on
// a miss. The build function runs outside the lock; when two goroutines
// race on the same key, one result wins and both callers get a valid pool.
func (pc *PoolCache) GetOrBuild(key uint64, build func() []string) []string {
	if pool, ok := pc.Get(key); ok {
		return pool
	}

	pool := build()

	pc.mu.Lock()
	defer pc.mu.Unlock()
	if existing, ok := pc.pools[key]; ok {
		return existing
	}
	pc.pools[key] = pool
	return pool
}

// Invalidate removes one pool.
func (pc *PoolCache) Invalidate(key uint64) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	delete(pc.pools, key)
}

// Reset drops every cached pool. Callers do this at session boundaries.
func (pc *PoolCache) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.pools = make(map[uint64][]string)
}

// Len returns the number of cached pools.
func (pc *PoolCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return len(pc.pools)
}

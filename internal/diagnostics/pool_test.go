package diagnostics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolKeyPartBoundaries(t *testing.T) {
	// Shifting a character across the part boundary must change the key.
	assert.NotEqual(t, PoolKey("ab", "c"), PoolKey("a", "bc"))
	assert.Equal(t, PoolKey("types", "main.go"), PoolKey("types", "main.go"))
}

func TestPoolCachePutGet(t *testing.T) {
	pc := NewPoolCache()
	key := PoolKey(string(CategoryType), "pkg/main")

	_, ok := pc.Get(key)
	assert.False(t, ok)

	pc.Put(key, []string{"User", "Users", "UserID"})

	pool, ok := pc.Get(key)
	require.True(t, ok)
	assert.Equal(t, []string{"User", "Users", "UserID"}, pool)
	assert.Equal(t, 1, pc.Len())
}

func TestPoolCacheGetOrBuildBuildsOnce(t *testing.T) {
	pc := NewPoolCache()
	key := PoolKey("identifiers", "scope1")

	var builds atomic.Int32
	build := func() []string {
		builds.Add(1)
		return []string{"a", "b"}
	}

	first := pc.GetOrBuild(key, build)
	second := pc.GetOrBuild(key, build)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), builds.Load())
}

func TestPoolCacheInvalidate(t *testing.T) {
	pc := NewPoolCache()
	key := PoolKey("members", "TypeA")

	pc.Put(key, []string{"fieldA"})
	pc.Invalidate(key)

	_, ok := pc.Get(key)
	assert.False(t, ok)
}

func TestPoolCacheReset(t *testing.T) {
	pc := NewPoolCache()
	for i := 0; i < 5; i++ {
		pc.Put(PoolKey("scope", fmt.Sprintf("%d", i)), []string{"x"})
	}
	require.Equal(t, 5, pc.Len())

	pc.Reset()

	assert.Equal(t, 0, pc.Len())
}

func TestPoolCacheConcurrentAccess(t *testing.T) {
	pc := NewPoolCache()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := PoolKey("scope", fmt.Sprintf("%d", i%10))
				pc.GetOrBuild(key, func() []string {
					return []string{fmt.Sprintf("name%d", i)}
				})
				pc.Get(key)
				if i%25 == 0 {
					pc.Invalidate(key)
				}
			}
		}(g)
	}
	wg.Wait()
}

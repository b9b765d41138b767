package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGetDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("k", 42, time.Minute)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheEvictionHook(t *testing.T) {
	var mu sync.Mutex
	evicted := map[string]interface{}{}
	c := NewMemoryCacheWithEviction(time.Minute, time.Minute, func(k string, v interface{}) {
		mu.Lock()
		defer mu.Unlock()
		evicted[k] = v
	})

	c.Set("a", 1, time.Minute)
	c.Set("a", 2, time.Minute)
	mu.Lock()
	assert.Empty(t, evicted, "overwrite does not evict")
	mu.Unlock()

	c.Delete("a")
	mu.Lock()
	assert.Equal(t, 2, evicted["a"])
	mu.Unlock()
}

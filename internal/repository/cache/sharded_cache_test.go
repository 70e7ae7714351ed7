package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orderdesk/internal/repository/cache"
)

func TestSharded_PutGetDelete(t *testing.T) {
	c := cache.NewSharded(cache.WithShards(8))
	defer c.Close()

	c.Put("k1", "v1")
	v, ok := c.Get("k1")
	require.True(t, ok)
	require.Equal(t, "v1", v)

	c.Delete("k1")
	_, ok = c.Get("k1")
	require.False(t, ok)
}

func TestSharded_TTLExpiry(t *testing.T) {
	c := cache.NewSharded(cache.WithShards(4), cache.WithShardTTL(20*time.Millisecond))
	defer c.Close()

	c.Put("k", "v")
	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get("k")
	require.False(t, ok, "entry should expire after the TTL")
}

func TestSharded_Snapshot_SkipsExpired(t *testing.T) {
	c := cache.NewSharded(cache.WithShards(4), cache.WithShardTTL(20*time.Millisecond))
	defer c.Close()

	c.Put("old", 1)
	time.Sleep(40 * time.Millisecond)
	c.Put("fresh", 2)

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	require.Contains(t, snap, "fresh")
}

func TestSharded_ConcurrentAccess(t *testing.T) {
	c := cache.NewSharded(cache.WithShards(16))
	defer c.Close()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("g%d-k%d", g, i)
				c.Put(key, i)
				_, _ = c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	require.Len(t, c.Snapshot(), 8*200)
}

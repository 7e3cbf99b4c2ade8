package terrain

import (
	"sync"

	"github.com/marc-cr1810/deepbound/internal/world"
)

const columnCacheShards = 32

// columnCache memoizes built columns, sharded by x so parallel chunk
// workers rarely contend on one lock. A miss releases the shard lock
// while the column builds; racing builders may duplicate work and the
// last writer wins, which is safe because builds are deterministic.
type columnCache struct {
	// capPerShard bounds each shard's map; zero means unbounded.
	capPerShard int
	shards      [columnCacheShards]cacheShard
}

type cacheShard struct {
	mu   sync.RWMutex
	cols map[int]*column
}

func newColumnCache(capColumns int) *columnCache {
	c := &columnCache{}
	if capColumns > 0 {
		c.capPerShard = (capColumns + columnCacheShards - 1) / columnCacheShards
	}
	for i := range c.shards {
		c.shards[i].cols = make(map[int]*column)
	}
	return c
}

func (c *columnCache) column(x int, build func(int) *column) *column {
	shard := &c.shards[world.FloorMod(x, columnCacheShards)]

	shard.mu.RLock()
	col, ok := shard.cols[x]
	shard.mu.RUnlock()
	if ok {
		return col
	}

	col = build(x)

	shard.mu.Lock()
	if c.capPerShard > 0 && len(shard.cols) >= c.capPerShard {
		if _, exists := shard.cols[x]; !exists {
			shard.evictFarthest(x)
		}
	}
	shard.cols[x] = col
	shard.mu.Unlock()
	return col
}

// evictFarthest drops the cached column farthest from x, preferring the
// smaller key on ties so eviction stays deterministic. Callers hold the
// shard write lock.
func (s *cacheShard) evictFarthest(x int) {
	victim, best := 0, -1
	for k := range s.cols {
		d := k - x
		if d < 0 {
			d = -d
		}
		if d > best || (d == best && k < victim) {
			best = d
			victim = k
		}
	}
	if best >= 0 {
		delete(s.cols, victim)
	}
}

func (c *columnCache) size() int {
	n := 0
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].cols)
		c.shards[i].mu.RUnlock()
	}
	return n
}

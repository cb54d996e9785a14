// ABOUTME: Bounded cache of wrapped URLs that were recently put into reading mode
// ABOUTME: Supports insertion-order batch eviction and a true LRU policy

package history

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Policy selects how the cache orders and evicts entries
type Policy string

const (
	// PolicyInsertion keeps insertion order fixed and evicts the oldest entries in batches
	PolicyInsertion Policy = "insertion"

	// PolicyLRU refreshes recency on lookup and evicts one entry at a time
	PolicyLRU Policy = "lru"
)

const (
	// DefaultCapacity is the number of URLs held before eviction kicks in
	DefaultCapacity = 50

	// DefaultEvictBatch is the number of oldest URLs dropped once capacity is exceeded
	DefaultEvictBatch = 5
)

// Options configures a Cache
type Options struct {
	Capacity   int
	EvictBatch int
	Policy     Policy
}

// Cache is a bounded set of URLs. It is safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	lru        *simplelru.LRU[string, struct{}]
	capacity   int
	evictBatch int
	policy     Policy
}

// New creates a cache. Zero option values fall back to the defaults.
func New(opts Options) (*Cache, error) {
	if opts.Capacity == 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.EvictBatch == 0 {
		opts.EvictBatch = DefaultEvictBatch
	}
	if opts.Policy == "" {
		opts.Policy = PolicyInsertion
	}

	if opts.Capacity < 1 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", opts.Capacity)
	}
	if opts.EvictBatch < 1 {
		return nil, fmt.Errorf("history evict batch must be positive, got %d", opts.EvictBatch)
	}

	size := opts.Capacity
	switch opts.Policy {
	case PolicyInsertion:
		// one spare slot so the underlying list never evicts on its own
		size = opts.Capacity + 1
	case PolicyLRU:
	default:
		return nil, fmt.Errorf("unknown history policy %q", opts.Policy)
	}

	lru, err := simplelru.NewLRU[string, struct{}](size, nil)
	if err != nil {
		return nil, err
	}

	return &Cache{
		lru:        lru,
		capacity:   opts.Capacity,
		evictBatch: opts.EvictBatch,
		policy:     opts.Policy,
	}, nil
}

// Contains reports whether url is held. Under PolicyLRU a hit refreshes recency.
func (c *Cache) Contains(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy == PolicyLRU {
		_, ok := c.lru.Get(url)
		return ok
	}
	return c.lru.Contains(url)
}

// Insert adds url. Under PolicyInsertion a held url keeps its original position
// and the oldest entries are dropped in one batch once capacity is exceeded.
func (c *Cache) Insert(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy == PolicyLRU {
		c.lru.Add(url, struct{}{})
		return
	}

	if c.lru.Contains(url) {
		return
	}
	c.lru.Add(url, struct{}{})

	if c.lru.Len() > c.capacity {
		for i := 0; i < c.evictBatch; i++ {
			if _, _, ok := c.lru.RemoveOldest(); !ok {
				break
			}
		}
	}
}

// Remove drops url if present
func (c *Cache) Remove(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(url)
}

// Len returns the number of held URLs
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Keys returns the held URLs from oldest to newest
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

// Policy returns the eviction policy in use
func (c *Cache) Policy() Policy {
	return c.policy
}

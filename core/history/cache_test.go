package history

import (
	"fmt"
	"sync"
	"testing"
)

func fill(t *testing.T, c *Cache, n int) []string {
	t.Helper()
	urls := make([]string, n)
	for i := 0; i < n; i++ {
		urls[i] = fmt.Sprintf("about:reader?url=https%%3A%%2F%%2Fexample.com%%2F%d", i)
		c.Insert(urls[i])
	}
	return urls
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.evictBatch != DefaultEvictBatch {
		t.Errorf("evictBatch = %d, want %d", c.evictBatch, DefaultEvictBatch)
	}
	if c.Policy() != PolicyInsertion {
		t.Errorf("Policy() = %s, want %s", c.Policy(), PolicyInsertion)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative capacity", Options{Capacity: -1}},
		{"negative batch", Options{EvictBatch: -3}},
		{"unknown policy", Options{Policy: "fifo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts)
			if err == nil {
				t.Error("New() should return error")
			}
			if c != nil {
				t.Error("New() should return nil cache on error")
			}
		})
	}
}

func TestCache_InsertContainsRemove(t *testing.T) {
	c, _ := New(Options{})
	url := "about:reader?url=https%3A%2F%2Fexample.com%2Fa"

	if c.Contains(url) {
		t.Fatal("empty cache should not contain url")
	}

	c.Insert(url)
	if !c.Contains(url) {
		t.Error("cache should contain inserted url")
	}

	c.Remove(url)
	if c.Contains(url) {
		t.Error("cache should not contain removed url")
	}

	// removing an absent url is a no-op
	c.Remove(url)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCache_BatchEviction(t *testing.T) {
	c, _ := New(Options{Capacity: 50, EvictBatch: 5})
	urls := fill(t, c, 50)

	if c.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", c.Len())
	}

	newest := "about:reader?url=https%3A%2F%2Fexample.com%2Fnewest"
	c.Insert(newest)

	if c.Len() != 46 {
		t.Errorf("Len() after overflow = %d, want 46", c.Len())
	}
	if !c.Contains(newest) {
		t.Error("cache should contain the newest entry")
	}
	for _, u := range urls[:5] {
		if c.Contains(u) {
			t.Errorf("cache should have evicted %s", u)
		}
	}
	for _, u := range urls[5:] {
		if !c.Contains(u) {
			t.Errorf("cache should still hold %s", u)
		}
	}
}

func TestCache_ReinsertKeepsOrder(t *testing.T) {
	c, _ := New(Options{Capacity: 3, EvictBatch: 1})
	c.Insert("a")
	c.Insert("b")
	c.Insert("c")

	// re-inserting the oldest entry must not refresh it
	c.Insert("a")
	if got := c.Keys(); fmt.Sprint(got) != "[a b c]" {
		t.Errorf("Keys() after re-insert = %v, want [a b c]", got)
	}

	c.Insert("d")
	if c.Contains("a") {
		t.Error("a should be evicted as the oldest insert")
	}
	if got := c.Keys(); fmt.Sprint(got) != "[b c d]" {
		t.Errorf("Keys() = %v, want [b c d]", got)
	}
}

func TestCache_LookupDoesNotRefreshInsertionOrder(t *testing.T) {
	c, _ := New(Options{Capacity: 2, EvictBatch: 1})
	c.Insert("a")
	c.Insert("b")

	if !c.Contains("a") {
		t.Fatal("a should be held")
	}

	c.Insert("c")
	if c.Contains("a") {
		t.Error("lookup must not protect a from eviction under insertion policy")
	}
}

func TestCache_EvictionIgnoresRemovedEntries(t *testing.T) {
	c, _ := New(Options{Capacity: 4, EvictBatch: 2})
	c.Insert("a")
	c.Insert("b")
	c.Insert("c")
	c.Insert("d")
	c.Remove("b")
	c.Insert("e")
	c.Insert("f")

	// a and c are the two oldest entries still held
	if got := c.Keys(); fmt.Sprint(got) != "[d e f]" {
		t.Errorf("Keys() = %v, want [d e f]", got)
	}
}

func TestCache_LRUPolicy(t *testing.T) {
	c, err := New(Options{Capacity: 2, Policy: PolicyLRU})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.Insert("a")
	c.Insert("b")

	// touching a makes b the least recently used
	if !c.Contains("a") {
		t.Fatal("a should be held")
	}
	c.Insert("c")

	if !c.Contains("a") {
		t.Error("a should survive after being looked up")
	}
	if c.Contains("b") {
		t.Error("b should be evicted as least recently used")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c, _ := New(Options{Capacity: 20, EvictBatch: 5})
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				u := fmt.Sprintf("u-%d-%d", g, i)
				c.Insert(u)
				c.Contains(u)
				if i%3 == 0 {
					c.Remove(u)
				}
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 20 {
		t.Errorf("Len() = %d, exceeds capacity 20", c.Len())
	}
}

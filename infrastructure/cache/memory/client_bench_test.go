package memory

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("key-%d", i), []byte(`["example.com","news.example.org"]`), 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, fmt.Sprintf("key-%d", i%1000))
	}
}

func BenchmarkMemoryCache_Set(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()
	value := []byte(`["example.com","news.example.org"]`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cache.Set(ctx, "enabledDomains", value, 0)
	}
}

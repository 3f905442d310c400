package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/apper-canvas/nutriscancore/internal/domain"
)

func newTestMemoryCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(time.Hour)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value interface{}
		want  interface{}
	}{
		{
			name:  "string",
			key:   "recognize:idli",
			value: "idli",
			want:  "idli",
		},
		{
			name:  "integer decodes as float64",
			key:   "count",
			value: 42,
			want:  float64(42),
		},
		{
			name:  "struct decodes as map",
			key:   "food",
			value: struct {
				ID       string `json:"id"`
				Calories int    `json:"calories"`
			}{"dosa", 168},
			want: map[string]interface{}{"id": "dosa", "calories": float64(168)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, tt.value, time.Minute); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := cache.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			switch want := tt.want.(type) {
			case map[string]interface{}:
				m, ok := got.(map[string]interface{})
				if !ok {
					t.Fatalf("Get() = %T, want map", got)
				}
				for k, v := range want {
					if m[k] != v {
						t.Errorf("Get()[%q] = %v, want %v", k, m[k], v)
					}
				}
			default:
				if got != tt.want {
					t.Errorf("Get() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "short", "value", time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after expiry error = %v, want %v", err, domain.ErrCacheMiss)
	}
	if exists, _ := cache.Exists(ctx, "short"); exists {
		t.Error("Exists() = true after expiry")
	}
}

func TestMemoryCache_NoTTL(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "forever", "value", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if removed := cache.removeExpired(time.Now().Add(24 * 365 * time.Hour)); removed != 0 {
		t.Errorf("removeExpired() = %d, want 0", removed)
	}
	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("Get() error = %v", err)
	}
}

func TestMemoryCache_Get_CacheMiss(t *testing.T) {
	cache := newTestMemoryCache(t)

	_, err := cache.Get(context.Background(), "non-existent-key")
	if !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_SetUnencodable(t *testing.T) {
	cache := newTestMemoryCache(t)

	if err := cache.Set(context.Background(), "bad", make(chan int), time.Minute); err == nil {
		t.Error("Set() error = nil, want encoding error")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	key := "delete-test"
	if err := cache.Set(ctx, key, "value", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	if _, err := cache.Get(ctx, key); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("Get() after delete error = %v, want %v", err, domain.ErrCacheMiss)
	}
}

func TestMemoryCache_Exists(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	exists, err := cache.Exists(ctx, "exists-test")
	if err != nil || exists {
		t.Errorf("Exists() = %v, %v, want false, nil", exists, err)
	}

	if err := cache.Set(ctx, "exists-test", "value", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	exists, err = cache.Exists(ctx, "exists-test")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v, want true, nil", exists, err)
	}
}

func TestMemoryCache_RemoveExpired(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "a", 1, time.Minute)
	_ = cache.Set(ctx, "b", 2, time.Hour)

	if removed := cache.removeExpired(time.Now().Add(30 * time.Minute)); removed != 1 {
		t.Errorf("removeExpired() = %d, want 1", removed)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestMemoryCache_StatsAndFlush(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "a", "x", time.Minute)
	_, _ = cache.Get(ctx, "a")
	_, _ = cache.Get(ctx, "a")
	_, _ = cache.Get(ctx, "missing")

	stats, err := cache.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Backend != BackendMemory || stats.Entries != 1 || stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Stats() = %+v", stats)
	}

	cache.Flush()
	if cache.Len() != 0 {
		t.Errorf("Len() after Flush = %d, want 0", cache.Len())
	}
}

func TestMemoryCache_CloseTwice(t *testing.T) {
	cache := NewMemoryCache(time.Millisecond)
	if err := cache.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestMemoryCache_Concurrency(t *testing.T) {
	cache := newTestMemoryCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "key"
			if i%2 == 0 {
				_ = cache.Set(ctx, key, i, time.Minute)
			} else {
				_, _ = cache.Get(ctx, key)
			}
			_, _ = cache.Exists(ctx, key)
		}(i)
	}
	wg.Wait()

	if _, err := cache.Get(ctx, "key"); err != nil {
		t.Errorf("Get() after concurrent writes error = %v", err)
	}
}

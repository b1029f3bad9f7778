package cache

import (
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type film struct {
	ID    int
	Title string
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestCache_SetGetDelete(t *testing.T) {
	c := New[int, film]()
	assert.Equal(t, 0, c.Size())

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, film{ID: 1, Title: "The Shawshank Redemption"})
	c.Set(2, film{ID: 2, Title: "The Godfather"})
	c.Set(1, film{ID: 1, Title: "Shawshank"})
	assert.Equal(t, 2, c.Size())

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Shawshank", got.Title)

	c.Delete(1)
	c.Delete(42)
	_, ok = c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Size())
}

func TestCache_Keys(t *testing.T) {
	c := New[string, []film]()
	assert.Empty(t, c.Keys())

	c.Set("popular", nil)
	c.Set("top-rated", nil)
	c.Set("upcoming", nil)

	keys := c.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"popular", "top-rated", "upcoming"}, keys)
}

func TestCache_TTL(t *testing.T) {
	clock := newClock()
	c := New(WithTTL[string, int](time.Minute), WithClock[string, int](clock.Now))

	c.Set("popular", 100)
	c.SetWithTTL("pinned", 200, 0)

	clock.Advance(59 * time.Second)
	val, ok := c.Get("popular")
	assert.True(t, ok)
	assert.Equal(t, 100, val)

	clock.Advance(time.Second)
	_, ok = c.Get("popular")
	assert.False(t, ok, "entries expire once the ttl has elapsed")

	val, ok = c.Get("pinned")
	assert.True(t, ok)
	assert.Equal(t, 200, val)

	assert.Equal(t, 2, c.Size(), "expired entries are counted until pruned")
	assert.Equal(t, 1, c.Prune())
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 0, c.Prune())
}

func TestCache_SetRefreshesTTL(t *testing.T) {
	clock := newClock()
	c := New(WithTTL[string, int](time.Minute), WithClock[string, int](clock.Now))

	c.Set("popular", 1)
	clock.Advance(45 * time.Second)
	c.Set("popular", 2)
	clock.Advance(45 * time.Second)

	val, ok := c.Get("popular")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}

func TestCache_PerEntryTTL(t *testing.T) {
	clock := newClock()
	c := New(WithTTL[string, int](time.Hour), WithClock[string, int](clock.Now))

	c.SetWithTTL("short", 1, time.Second)
	c.Set("long", 2)

	clock.Advance(2 * time.Second)
	_, ok := c.Get("short")
	assert.False(t, ok)
	_, ok = c.Get("long")
	assert.True(t, ok)
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int]()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("%d-%d", w, i)
				c.Set(key, i)
				if v, ok := c.Get(key); !ok || v != i {
					t.Errorf("lost write for %s", key)
				}
				if i%2 == 0 {
					c.Delete(key)
				}
				_ = c.Keys()
				c.Prune()
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 8*50, c.Size())
}

// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

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
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New(ttl)
	c.now = clock.Now
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(time.Minute)
	c.Set("key1", "value1")

	value, exists := c.Get("key1")
	if !exists || value != "value1" {
		t.Errorf("Get(key1) = %v, %v", value, exists)
	}
	if _, exists := c.Get("key2"); exists {
		t.Error("expected key2 to not exist")
	}

	stats := c.GetStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.TotalKeys != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if c.HitRate() != 50 {
		t.Errorf("HitRate() = %v, want 50", c.HitRate())
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(time.Minute)
	c.Set("key1", "value1")
	c.SetWithTTL("key2", "value2", time.Hour)

	clock.Advance(2 * time.Minute)

	if _, exists := c.Get("key1"); exists {
		t.Error("expected key1 to be expired")
	}
	if _, exists := c.Get("key2"); !exists {
		t.Error("expected key2 to survive")
	}
	if c.GetStats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.GetStats().Evictions)
	}
}

func TestCacheDeleteAndPurge(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be deleted")
	}

	c.Purge()
	for _, key := range []string{"b", "c"} {
		if _, ok := c.Get(key); ok {
			t.Errorf("expected %s to be purged", key)
		}
	}
	if c.GetStats().TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0", c.GetStats().TotalKeys)
	}
}

func TestCacheGetOrCompute(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(time.Minute)
	calls := 0
	compute := func() (any, error) {
		calls++
		return "stats", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrCompute("stats:v1", compute)
		if err != nil || v != "stats" {
			t.Fatalf("GetOrCompute = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	wantErr := errors.New("boom")
	if _, err := c.GetOrCompute("broken", func() (any, error) { return nil, wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if _, ok := c.Get("broken"); ok {
		t.Error("errors must not be cached")
	}
}

func TestCacheCleanup(t *testing.T) {
	t.Parallel()

	c, clock := newTestCache(time.Minute)
	c.Set("old", 1)
	clock.Advance(30 * time.Second)
	c.Set("new", 2)
	clock.Advance(45 * time.Second)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 || stats.Evictions != 1 {
		t.Errorf("stats after cleanup = %+v", stats)
	}
}

func TestCacheServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	c := New(time.Minute).WithCleanupInterval(10 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if c.String() != "response-cache" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	a := GenerateKey("similar", map[string]any{"id": 1, "version": 3})
	b := GenerateKey("similar", map[string]any{"id": 1, "version": 3})
	c := GenerateKey("similar", map[string]any{"id": 1, "version": 4})

	if a != b {
		t.Error("same params should yield same key")
	}
	if a == c {
		t.Error("different params should yield different keys")
	}
}

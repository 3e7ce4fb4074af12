package service

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	cache.Set(ctx, "k", []byte("valor"), time.Minute)
	got, ok := cache.Get(ctx, "k")
	if !ok || string(got) != "valor" {
		t.Fatalf("unexpected get: %q %v", got, ok)
	}

	if _, ok := cache.Get(ctx, "otro"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestMemoryCache_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	cache.Set(ctx, "k", []byte("v"), time.Nanosecond)
	time.Sleep(2 * time.Millisecond)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestMemoryCache_NonPositiveTTLIsNoop(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	cache.Set(ctx, "k", []byte("v"), 0)
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Fatalf("expected no entry for zero ttl")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	cache.Set(ctx, "a", []byte("1"), time.Minute)
	cache.Set(ctx, "b", []byte("2"), time.Minute)
	cache.Clear(ctx)
	if _, ok := cache.Get(ctx, "a"); ok {
		t.Fatalf("expected cleared cache")
	}
	if _, ok := cache.Get(ctx, "b"); ok {
		t.Fatalf("expected cleared cache")
	}
}

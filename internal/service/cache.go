package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache es el contrato minimo de cacheo de resultados (matches, analisis).
// Se inyecta donde hace falta; nunca hay instancia global.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Clear(ctx context.Context)
}

type memoryCacheEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]memoryCacheEntry
}

func NewMemoryCache() Cache {
	return &memoryCache{items: make(map[string]memoryCacheEntry)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[key]
	if !ok {
		return nil, false
	}
	// Expiracion perezosa: se limpia al leer, no hay goroutine de barrido.
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return entry.value, true
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = memoryCacheEntry{
		value:     value,
		expiresAt: time.Now().UTC().Add(ttl),
	}
}

func (c *memoryCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]memoryCacheEntry)
}

type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache devuelve nil si no hay cliente, para que el caller caiga a
// memoria sin ramificar.
func NewRedisCache(client *redis.Client, prefix string) Cache {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = "cache:"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	_ = c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

func (c *redisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}

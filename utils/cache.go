// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"servit/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultCacheTTL is the freshness window of the ephemeral cache.
const DefaultCacheTTL = 5 * time.Minute

// Cache is the process-wide ephemeral cache. Values are stored as JSON so
// every backend hands callers an independent copy. It is an accelerator only:
// every cached value must be reconstructible from the database.
type Cache interface {
	// Get decodes the entry for key into dest and reports whether it was present and fresh.
	Get(ctx context.Context, key string, dest any) bool
	// Set overwrites the entry for key and stamps it now.
	Set(ctx context.Context, key string, value any)
	// Delete removes one entry.
	Delete(ctx context.Context, key string)
	// Clear removes every entry.
	Clear(ctx context.Context)
}

// AdminCacheKey is the cache key for an admin looked up by email.
func AdminCacheKey(email string) string {
	return "admin:" + email
}

// ServiceCacheKey is the cache key for a service document.
func ServiceCacheKey(categoryID, serviceID string) string {
	return "service:" + categoryID + ":" + serviceID
}

type cacheEntry struct {
	data      []byte
	timestamp time.Time
}

// MemoryCache keeps entries in a map and expires them lazily on read.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates an in-process cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest any) bool {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && m.now().Sub(entry.timestamp) > m.ttl {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		GetLogger().Warn("cache: dropping undecodable entry", zap.String("key", key), zap.Error(err))
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false
	}
	return true
}

func (m *MemoryCache) Set(_ context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		GetLogger().Warn("cache: value not encodable", zap.String("key", key), zap.Error(err))
		return
	}
	m.mu.Lock()
	m.entries[key] = cacheEntry{data: data, timestamp: m.now()}
	m.mu.Unlock()
}

func (m *MemoryCache) Delete(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *MemoryCache) Clear(_ context.Context) {
	m.mu.Lock()
	m.entries = make(map[string]cacheEntry)
	m.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

const redisCachePrefix = "servit:cache:"

// RedisCache shares the cache between processes. Expiry is delegated to redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) bool {
	data, err := r.client.Get(ctx, redisCachePrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			GetLogger().Warn("cache: redis get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		r.Delete(ctx, key)
		return false
	}
	return true
}

func (r *RedisCache) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		GetLogger().Warn("cache: value not encodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, redisCachePrefix+key, data, r.ttl).Err(); err != nil {
		GetLogger().Warn("cache: redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, redisCachePrefix+key).Err(); err != nil {
		GetLogger().Warn("cache: redis delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *RedisCache) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, redisCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("cache: redis scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		GetLogger().Warn("cache: redis clear failed", zap.Error(err))
	}
}

// NewCacheFromConfig builds the single cache for this process from AppConfig.
func NewCacheFromConfig() (Cache, error) {
	cfg := config.AppConfig
	switch cfg.CacheBackend {
	case "", "memory":
		return NewMemoryCache(cfg.CacheTTL), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisCacheDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
		}
		return NewRedisCache(client, cfg.CacheTTL), nil
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a shared vector cache for deployments running more than one
// matcher process. When the server is unreachable every lookup misses and
// every write is dropped, so matching keeps working without a cache.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ttl time.Duration, logger *log.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	host := strings.TrimSpace(os.Getenv("REDIS_HOST"))
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(os.Getenv("REDIS_PORT"))
	if port == "" {
		port = "6379"
	}
	pass := strings.TrimSpace(os.Getenv("REDIS_PASSWORD"))

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: pass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		if logger != nil {
			logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		}
		_ = client.Close()
		return &Redis{client: nil, ttl: ttl, logger: logger}
	}

	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]float64, bool) {
	if r.isUnavailable() {
		return nil, false
	}
	b, err := r.client.Get(ctx, embeddingKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.warnUnavailableOnce(err)
		}
		return nil, false
	}
	var vec []float64
	if err := json.Unmarshal(b, &vec); err != nil {
		return nil, false
	}
	if len(vec) == 0 {
		return nil, false
	}
	return vec, true
}

func (r *Redis) Put(ctx context.Context, key string, vec []float64) {
	if r.isUnavailable() || key == "" || len(vec) == 0 {
		return
	}
	b, err := json.Marshal(vec)
	if err != nil {
		return
	}
	// Expiry rides on the server-side TTL instead of lazy deletes.
	if err := r.client.Set(ctx, embeddingKey(key), b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

func (r *Redis) Evict(ctx context.Context, key string) {
	if r.isUnavailable() {
		return
	}
	if err := r.client.Del(ctx, embeddingKey(key)).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}
}

func embeddingKey(key string) string {
	return "embedding:" + key
}

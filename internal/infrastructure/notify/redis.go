package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"placement-match/internal/domain/match"

	"github.com/redis/go-redis/v9"
)

// MatchChannel carries one JSON match.Result per message.
const MatchChannel = "match_events"

// RedisNotifier publishes high-scoring matches to a pub/sub channel.
// Delivery to students happens in a separate relay process that subscribes
// to the same channel.
type RedisNotifier struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedisNotifier(logger *log.Logger) *RedisNotifier {
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
			logger.Printf("[Notify] Redis unavailable: %v", err)
		}
		_ = client.Close()
		return &RedisNotifier{client: nil, logger: logger}
	}

	return &RedisNotifier{client: client, logger: logger}
}

func (n *RedisNotifier) NotifyMatch(ctx context.Context, m match.Result) error {
	if n == nil || n.client == nil {
		return fmt.Errorf("notifier unavailable")
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := n.client.Publish(ctx, MatchChannel, payload).Err(); err != nil {
		return err
	}
	return nil
}

func (n *RedisNotifier) Close() error {
	if n == nil || n.client == nil {
		return nil
	}
	return n.client.Close()
}

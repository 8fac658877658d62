package ws

import (
	"context"
	"encoding/json"
	"log"

	"placement-match/internal/domain/match"
	"placement-match/internal/infrastructure/notify"

	"github.com/redis/go-redis/v9"
)

// Subscriber bridges the match event channel to the hub. Each message is a
// JSON match result; its student id decides which clients receive it.
type Subscriber struct {
	client *redis.Client
	hub    *Hub
	logger *log.Logger
}

func NewSubscriber(client *redis.Client, hub *Hub, logger *log.Logger) *Subscriber {
	return &Subscriber{client: client, hub: hub, logger: logger}
}

// Run blocks until the context is cancelled, forwarding every event it can
// decode and logging the ones it cannot.
func (s *Subscriber) Run(ctx context.Context) error {
	sub := s.client.Subscribe(ctx, notify.MatchChannel)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var m match.Result
			if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
				if s.logger != nil {
					s.logger.Printf("ws event status=malformed err=%v", err)
				}
				continue
			}
			s.hub.Deliver(m.StudentID.String(), []byte(msg.Payload))
		}
	}
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/pizzacraft/backend/internal/kafka"
	"github.com/pizzacraft/backend/internal/orders"
	"github.com/pizzacraft/backend/internal/redisx"
)

// Dedup guards against reprocessing a delivered-more-than-once event.
type Dedup interface {
	Seen(ctx context.Context, eventID string) bool
	Mark(ctx context.Context, eventID string)
}

// RedisDedup records processed event ids with a TTL.
type RedisDedup struct {
	Client  *redis.Client
	Service string
}

func (d *RedisDedup) Seen(ctx context.Context, eventID string) bool {
	key := fmt.Sprintf(redisx.KeyDedup, d.Service, eventID)
	exists, _ := redisx.Exists(ctx, d.Client, key)
	return exists
}

func (d *RedisDedup) Mark(ctx context.Context, eventID string) {
	key := fmt.Sprintf(redisx.KeyDedup, d.Service, eventID)
	_ = d.Client.Set(ctx, key, "1", redisx.TTLDedup).Err()
}

// Service turns low-stock events into admin alerts. Generator failures
// degrade to a plain fallback line; they never bubble up, so the event is
// still committed.
type Service struct {
	Dedup     Dedup
	Generator Generator
}

// HandleLowStock is installed as the consumer handler.
func (s *Service) HandleLowStock(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventLowStock {
		return nil
	}

	if s.Dedup != nil {
		if s.Dedup.Seen(ctx, env.EventID) {
			return nil
		}
		s.Dedup.Mark(ctx, env.EventID)
	}

	p, err := kafkax.UnwrapPayload[orders.LowStockPayload](env.Payload)
	if err != nil {
		return err
	}

	text, err := s.Generator.Describe(ctx, p.Name, string(p.Category), p.Stock, p.Threshold)
	if err != nil {
		log.Printf("low stock alert for %s: %d left (threshold %d)", p.Name, p.Stock, p.Threshold)
		return nil
	}
	log.Printf("[ADMIN ALERT] %s", text)
	return nil
}

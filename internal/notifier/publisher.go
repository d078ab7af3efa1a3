package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prontomx/delivery-service/internal/config"
	"github.com/prontomx/delivery-service/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Publisher is the production Bus. Broadcast events go to a kafka topic the
// gateway tier consumes; room events go over redis pub/sub, whose channel
// subscriptions map one-to-one onto rooms.
type Publisher struct {
	writer *kafka.Writer
	redis  *redis.Client
	retry  utils.RetryConfig
}

func NewPublisher(cfg config.Kafka, rdb *redis.Client) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		redis: rdb,
		retry: utils.RetryConfig{
			InitialDelay: 50 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

func (p *Publisher) Broadcast(ctx context.Context, topic Topic, payload any) error {
	value, err := json.Marshal(Event{Topic: topic, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		// Keying by topic keeps per-topic publish order on one partition.
		Key:   []byte(topic),
		Value: value,
	}

	return utils.Retry(p.retry, func() error {
		return p.writer.WriteMessages(ctx, msg)
	})
}

func (p *Publisher) Room(ctx context.Context, room string, topic Topic, payload any) error {
	value, err := json.Marshal(Event{Topic: topic, Room: room, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return utils.Retry(p.retry, func() error {
		return p.redis.Publish(ctx, room, value).Err()
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

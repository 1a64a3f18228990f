package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Config names the broker destinations. Empty values disable the destination.
type Config struct {
	Subject string
	Channel string
}

// Event is the envelope published for every domain transition.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Source     string      `json:"source"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// Publisher fans domain events out to NATS and Redis pub/sub.
type Publisher struct {
	nats    *nats.Conn
	redis   *redis.Client
	subject string
	channel string
	source  string
	logger  zerolog.Logger
	now     func() time.Time
}

// New constructs a publisher. Either connection may be nil.
func New(cfg Config, natsConn *nats.Conn, redisClient *redis.Client, logger zerolog.Logger) *Publisher {
	return &Publisher{
		nats:    natsConn,
		redis:   redisClient,
		subject: strings.Trim(strings.TrimSpace(cfg.Subject), "."),
		channel: strings.TrimSpace(cfg.Channel),
		source:  uuid.NewString(),
		logger:  logger.With().Str("component", "event_publisher").Logger(),
		now:     time.Now,
	}
}

// Connect dials NATS. An empty URL returns a nil connection and no error.
func Connect(url string) (*nats.Conn, error) {
	if strings.TrimSpace(url) == "" {
		return nil, nil
	}
	conn, err := nats.Connect(url, nats.Name("edumanage-api"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return conn, nil
}

// Publish sends one event. The NATS subject is suffixed with the event type.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Source:     p.source,
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	if p.redis != nil && p.channel != "" {
		if err := p.redis.Publish(ctx, p.channel, data).Err(); err != nil {
			return fmt.Errorf("publish to redis: %w", err)
		}
	}

	if p.nats != nil && p.subject != "" {
		if err := p.nats.Publish(p.subject+"."+eventType, data); err != nil {
			return fmt.Errorf("publish to nats: %w", err)
		}
	}

	p.logger.Debug().Str("event_type", eventType).Str("event_id", event.ID).Msg("event published")
	return nil
}

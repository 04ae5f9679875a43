// Package notify forwards committed domain events to the notification
// service over a Redis pub/sub channel.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/cookbook-backend/internal/config"
	"github.com/heartmarshall/cookbook-backend/internal/domain"
)

// NewClient creates a Redis client from cfg and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close() //nolint:errcheck
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Message is the JSON payload published for every event.
type Message struct {
	Type          string         `json:"type"`
	ActorID       string         `json:"actorId"`
	ScopeID       *string        `json:"scopeId,omitempty"`
	TargetUserIDs []string       `json:"targetUserIds"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	OccurredAt    time.Time      `json:"occurredAt"`
}

func newMessage(ev domain.DomainEvent) Message {
	m := Message{
		Type:          ev.Type.String(),
		ActorID:       ev.ActorID.String(),
		TargetUserIDs: make([]string, 0, len(ev.TargetUserIDs)),
		Metadata:      ev.Metadata,
		OccurredAt:    ev.OccurredAt,
	}
	if ev.ScopeID != nil {
		s := ev.ScopeID.String()
		m.ScopeID = &s
	}
	for _, id := range ev.TargetUserIDs {
		m.TargetUserIDs = append(m.TargetUserIDs, id.String())
	}
	return m
}

// Publisher publishes events to one channel.
type Publisher struct {
	client  *redis.Client
	channel string
	log     *slog.Logger
}

// NewPublisher creates a Publisher for channel.
func NewPublisher(client *redis.Client, channel string, log *slog.Logger) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
		log:     log.With("component", "notify", "channel", channel),
	}
}

// Handle is an eventbus handler. Events without recipients are skipped.
func (p *Publisher) Handle(ctx context.Context, ev domain.DomainEvent) error {
	if len(ev.TargetUserIDs) == 0 {
		return nil
	}

	payload, err := json.Marshal(newMessage(ev))
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to channel %s: %w", p.channel, err)
	}

	p.log.DebugContext(ctx, "event published", slog.String("type", ev.Type.String()))
	return nil
}

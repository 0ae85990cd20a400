package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_control_system/internal/config"
)

const (
	eventQueueKey = "flood_control_events"
)

// Entity - тип изменившейся сущности
type Entity string

const (
	EntityArea        Entity = "area"
	EntityProject     Entity = "project"
	EntityIncident    Entity = "incident"
	EntityAreaOptions Entity = "area_options"
)

type Action string

const (
	ActionCreated     Action = "created"
	ActionUpdated     Action = "updated"
	ActionDeleted     Action = "deleted"
	ActionInvalidated Action = "invalidated"
)

// ChangeEvent - событие об изменении данных; получатель перечитывает соответствующий список
type ChangeEvent struct {
	Entity    Entity    `json:"entity"`
	Action    Action    `json:"action"`
	ID        int64     `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий об изменениях
type EventPublisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь в Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// NewEventPublisher возвращает издателя только если очередь кто-то читает: нужен Redis и WEBHOOK_URL.
// Иначе возвращается nil, и сервисы не публикуют события.
func NewEventPublisher(client *redis.Client, cfg *config.Config) EventPublisher {
	if client == nil || cfg.WebhookURL == "" {
		return nil
	}
	return NewRedisEventPublisher(client)
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}
	return nil
}

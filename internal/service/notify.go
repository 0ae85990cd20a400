package service

import (
	"context"
	"time"

	"github.com/shenikar/flood_control_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// notifyChange публикует событие об изменении, чтобы клиенты перечитали списки.
// Ошибка публикации не отменяет уже выполненную запись и только логируется.
func notifyChange(ctx context.Context, publisher webhook.EventPublisher, log *logrus.Entry, entity webhook.Entity, action webhook.Action, id int64) {
	if publisher == nil {
		return
	}
	event := webhook.ChangeEvent{
		Entity:    entity,
		Action:    action,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("entity", entity).Warn("Failed to publish change event")
	}
}

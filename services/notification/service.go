package notification

import (
	"context"
	"encoding/json"
	"time"

	"glowbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// OutboxKey is the Redis list the external dispatcher consumes.
const OutboxKey = "notifications:outbox"

// outboxEnvelope is what the dispatcher reads off the queue.
type outboxEnvelope struct {
	Recipient string            `json:"recipient"` // "client" or "professional"
	TargetID  string            `json:"targetId"`
	Template  string            `json:"template"`
	Data      map[string]string `json:"data,omitempty"`
	QueuedAt  time.Time         `json:"queuedAt"`
}

// DefaultNotificationService hands payloads to the external delivery system
// through a Redis outbox list. Actual SMS/push delivery happens downstream.
type DefaultNotificationService struct {
	Cache *redis.Client
}

func (s *DefaultNotificationService) SendClientMessage(ctx context.Context, clientID, template string, data map[string]string) error {
	return s.enqueue(ctx, "client", clientID, template, data)
}

func (s *DefaultNotificationService) SendProfessionalMessage(ctx context.Context, professionalID, template string, data map[string]string) error {
	return s.enqueue(ctx, "professional", professionalID, template, data)
}

func (s *DefaultNotificationService) enqueue(ctx context.Context, recipient, targetID, template string, data map[string]string) error {
	env := outboxEnvelope{
		Recipient: recipient,
		TargetID:  targetID,
		Template:  template,
		Data:      data,
		QueuedAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return err
	}
	if err := s.Cache.LPush(ctx, OutboxKey, payload).Err(); err != nil {
		utils.GetLogger().Warn("Failed to enqueue notification",
			zap.String("template", template), zap.Error(err))
		return err
	}
	return nil
}

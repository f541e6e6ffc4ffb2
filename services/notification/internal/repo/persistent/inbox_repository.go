package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"unvaultd/pkg/logger"
	"unvaultd/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	MaxInboxSize = 100
	InboxTTL     = 30 * 24 * time.Hour
)

// InboxRepository keeps each member's newest notifications in a Redis list
// and fans them out on a channel of the same name.
type InboxRepository interface {
	Push(ctx context.Context, notification entity.Notification) error
	List(ctx context.Context, userID string, page entity.Page) ([]entity.Notification, int64, error)
	Clear(ctx context.Context, userID string) error
	Subscribe(ctx context.Context, userID string) (<-chan entity.Notification, func() error)
}

type inboxRepository struct {
	client *redis.Client
	logger *logger.Logger
}

func NewInboxRepository(client *redis.Client, logger *logger.Logger) InboxRepository {
	return &inboxRepository{client: client, logger: logger}
}

func InboxKey(userID string) string {
	return "notifications:" + userID
}

func (r *inboxRepository) Push(ctx context.Context, notification entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := InboxKey(notification.UserID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, MaxInboxSize-1)
		pipe.Expire(ctx, key, InboxTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	// The list is the record; a missed live push is picked up on the next fetch.
	if err := r.client.Publish(ctx, key, payload).Err(); err != nil {
		r.logger.Warn("Failed to publish notification on %s: %v", key, err)
	}
	return nil
}

func (r *inboxRepository) List(ctx context.Context, userID string, page entity.Page) ([]entity.Notification, int64, error) {
	key := InboxKey(userID)

	raw, err := r.client.LRange(ctx, key, int64(page.Offset), int64(page.Offset+page.Limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err == nil {
			notifications = append(notifications, n)
		}
	}

	total, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return notifications, total, nil
}

func (r *inboxRepository) Clear(ctx context.Context, userID string) error {
	return r.client.Del(ctx, InboxKey(userID)).Err()
}

// Subscribe streams notifications published after the call. The returned
// func closes the subscription, which also closes the channel.
func (r *inboxRepository) Subscribe(ctx context.Context, userID string) (<-chan entity.Notification, func() error) {
	pubsub := r.client.Subscribe(ctx, InboxKey(userID))
	out := make(chan entity.Notification)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var n entity.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				continue
			}
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, pubsub.Close
}

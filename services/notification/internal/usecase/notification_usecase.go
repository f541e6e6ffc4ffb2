package usecase

import (
	"context"
	"fmt"
	"time"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/queue"
	"unvaultd/services/notification/internal/entity"
	"unvaultd/services/notification/internal/repo/persistent"

	"github.com/google/uuid"
)

const (
	emptyInboxMessage  = "No notifications yet"
	messagesComingSoon = "Direct messaging functionality is currently in development."
)

type NotificationUseCase interface {
	HandleActivity(ctx context.Context, event queue.Event) error
	List(ctx context.Context, userID string, page entity.Page) (*entity.NotificationPage, error)
	Clear(ctx context.Context, userID string) error
	Stream(ctx context.Context, userID string) (<-chan entity.Notification, func() error)
	Messages(ctx context.Context, userID string) *entity.Inbox
}

type notificationUseCase struct {
	inbox  persistent.InboxRepository
	actors persistent.ActorRepository
	logger *logger.Logger
	now    func() time.Time
}

func NewNotificationUseCase(inbox persistent.InboxRepository, actors persistent.ActorRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		inbox:  inbox,
		actors: actors,
		logger: logger,
		now:    time.Now,
	}
}

// HandleActivity turns one queued activity into an inbox entry for its recipient.
func (uc *notificationUseCase) HandleActivity(ctx context.Context, event queue.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.UserID == event.ActorID {
		uc.logger.Debug("[NOTIFICATION HANDLER] Skipping self-activity %s by %s", event.Type, event.ActorID)
		return nil
	}

	actorName, err := uc.actors.DisplayName(ctx, event.ActorID)
	if err != nil {
		uc.logger.Warn("[NOTIFICATION HANDLER] Failed to resolve actor %s: %v", event.ActorID, err)
		actorName = "Someone"
	}

	title, message, err := compose(event.Type, actorName)
	if err != nil {
		return err
	}

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = uc.now().UTC()
	}

	notification := entity.Notification{
		ID:        uuid.New().String(),
		UserID:    event.UserID,
		ActorID:   event.ActorID,
		ActorName: actorName,
		Type:      string(event.Type),
		PostID:    event.PostID,
		Title:     title,
		Message:   message,
		CreatedAt: createdAt,
	}

	if err := uc.inbox.Push(ctx, notification); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to store %s notification for %s: %v", event.Type, event.UserID, err)
		return err
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Stored %s notification for %s", event.Type, event.UserID)
	return nil
}

func (uc *notificationUseCase) List(ctx context.Context, userID string, page entity.Page) (*entity.NotificationPage, error) {
	notifications, total, err := uc.inbox.List(ctx, userID, page)
	if err != nil {
		uc.logger.Error("Failed to load notifications of %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load notifications")
	}
	if notifications == nil {
		notifications = []entity.Notification{}
	}

	result := &entity.NotificationPage{
		Notifications: notifications,
		Count:         len(notifications),
		Total:         total,
		Limit:         page.Limit,
		Offset:        page.Offset,
	}
	if total == 0 {
		result.Message = emptyInboxMessage
	}
	return result, nil
}

func (uc *notificationUseCase) Clear(ctx context.Context, userID string) error {
	if err := uc.inbox.Clear(ctx, userID); err != nil {
		uc.logger.Error("Failed to clear notifications of %s: %v", userID, err)
		return fmt.Errorf("failed to clear notifications")
	}
	return nil
}

func (uc *notificationUseCase) Stream(ctx context.Context, userID string) (<-chan entity.Notification, func() error) {
	return uc.inbox.Subscribe(ctx, userID)
}

func (uc *notificationUseCase) Messages(ctx context.Context, userID string) *entity.Inbox {
	return &entity.Inbox{
		Conversations: []entity.Conversation{},
		Message:       messagesComingSoon,
	}
}

func compose(eventType queue.EventType, actor string) (string, string, error) {
	switch eventType {
	case queue.EventLike:
		return "New Like!", fmt.Sprintf("%s liked your listing", actor), nil
	case queue.EventSave:
		return "Saved to an archive", fmt.Sprintf("%s saved your listing", actor), nil
	case queue.EventFollow:
		return "New Follower!", fmt.Sprintf("%s started following you", actor), nil
	case queue.EventNewPost:
		return "New Listing", fmt.Sprintf("%s posted a new listing", actor), nil
	default:
		return "", "", fmt.Errorf("%w: unknown type %q", queue.ErrInvalidEvent, eventType)
	}
}

package http

import (
	"context"

	"unvaultd/pkg/queue"
	"unvaultd/services/notification/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleActivity(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotificationUseCase) List(ctx context.Context, userID string, page entity.Page) (*entity.NotificationPage, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationPage), args.Error(1)
}

func (m *MockNotificationUseCase) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationUseCase) Stream(ctx context.Context, userID string) (<-chan entity.Notification, func() error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(<-chan entity.Notification), args.Get(1).(func() error)
}

func (m *MockNotificationUseCase) Messages(ctx context.Context, userID string) *entity.Inbox {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.Inbox)
}

package usecase

import (
	"context"

	"unvaultd/services/notification/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockInboxRepository struct {
	mock.Mock
}

func (m *MockInboxRepository) Push(ctx context.Context, notification entity.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockInboxRepository) List(ctx context.Context, userID string, page entity.Page) ([]entity.Notification, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockInboxRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockInboxRepository) Subscribe(ctx context.Context, userID string) (<-chan entity.Notification, func() error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(<-chan entity.Notification), args.Get(1).(func() error)
}

type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) DisplayName(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

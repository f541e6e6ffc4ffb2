package http

import (
	"context"

	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, userID string, input usecase.ListingInput, images []usecase.ImageUpload) (*entity.FeedItem, error) {
	args := m.Called(ctx, userID, input, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedItem), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.FeedItem, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedItem), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, postID, userID string, input usecase.ListingInput) (*entity.FeedItem, error) {
	args := m.Called(ctx, postID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedItem), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

type MockFeedUseCase struct {
	mock.Mock
}

func (m *MockFeedUseCase) GlobalFeed(ctx context.Context, viewerID string, page entity.Page) (*entity.FeedPage, error) {
	args := m.Called(ctx, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

func (m *MockFeedUseCase) ProfileFeed(ctx context.Context, viewerID, userID string, page entity.Page) (*entity.FeedPage, error) {
	args := m.Called(ctx, viewerID, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

func (m *MockFeedUseCase) LikedPosts(ctx context.Context, viewerID, ownerID string, page entity.Page) (*entity.FeedPage, error) {
	args := m.Called(ctx, viewerID, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

func (m *MockFeedUseCase) SavedPosts(ctx context.Context, viewerID, ownerID string, page entity.Page) (*entity.FeedPage, error) {
	args := m.Called(ctx, viewerID, ownerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FeedPage), args.Error(1)
}

type MockReactionUseCase struct {
	mock.Mock
}

func (m *MockReactionUseCase) ToggleLike(ctx context.Context, userID, postID string) (*entity.LikeResult, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockReactionUseCase) ToggleSave(ctx context.Context, userID, postID string) (*entity.SaveResult, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SaveResult), args.Error(1)
}

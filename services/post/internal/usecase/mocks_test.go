package usecase

import (
	"context"
	"encoding/json"
	"io"

	"unvaultd/pkg/cache"
	"unvaultd/pkg/queue"
	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	if post.ID == "" {
		post.ID = "post-1"
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetOwnerID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockPostRepository) GetAuthor(ctx context.Context, userID string) (entity.Author, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entity.Author), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, page entity.Page) ([]*entity.Post, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID string, page entity.Page) ([]*entity.Post, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListReactedBy(ctx context.Context, kind entity.Reaction, userID string, page entity.Page) ([]*entity.Post, error) {
	args := m.Called(ctx, kind, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) FollowerIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Exists(ctx context.Context, kind entity.Reaction, postID, userID string) (bool, error) {
	args := m.Called(ctx, kind, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReactionRepository) Create(ctx context.Context, kind entity.Reaction, postID, userID string) error {
	args := m.Called(ctx, kind, postID, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) Delete(ctx context.Context, kind entity.Reaction, postID, userID string) error {
	args := m.Called(ctx, kind, postID, userID)
	return args.Error(0)
}

func (m *MockReactionRepository) Count(ctx context.Context, kind entity.Reaction, postID string) (int64, error) {
	args := m.Called(ctx, kind, postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ReactionRepository = (*MockReactionRepository)(nil)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockStorage) KeyFromURL(url string) string {
	args := m.Called(url)
	return args.String(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishActivity(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func noCache() EntityCache {
	return cache.NewEntityCache(nil, "post", 0)
}

// memoryCache round-trips values through JSON like the redis-backed cache.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, id string, dst interface{}) bool {
	raw, ok := m.entries[id]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (m *memoryCache) Set(ctx context.Context, id string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[id] = raw
	return nil
}

func (m *memoryCache) Invalidate(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		delete(m.entries, id)
	}
	return nil
}

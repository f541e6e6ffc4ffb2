package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/queue"
	"unvaultd/services/auth/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleFollow_OnThenOff(t *testing.T) {
	users := new(MockUserRepository)
	follows := new(MockFollowRepository)
	uc := NewFollowUseCase(users, follows, nil, logger.NewNop())
	ctx := context.Background()

	users.On("GetByID", ctx, "b").Return(&entity.User{ID: "b"}, nil)

	follows.On("Exists", ctx, "a", "b").Return(false, nil).Once()
	follows.On("Create", ctx, "a", "b").Return(nil).Once()
	follows.On("Exists", ctx, "a", "b").Return(true, nil).Once()
	follows.On("CountFollowers", ctx, "b").Return(int64(1), nil).Once()

	result, err := uc.ToggleFollow(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, result.Following)
	assert.Equal(t, int64(1), result.FollowersCount)

	follows.On("Exists", ctx, "a", "b").Return(true, nil).Once()
	follows.On("Delete", ctx, "a", "b").Return(nil).Once()
	follows.On("Exists", ctx, "a", "b").Return(false, nil).Once()
	follows.On("CountFollowers", ctx, "b").Return(int64(0), nil).Once()

	result, err = uc.ToggleFollow(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, result.Following)
	assert.Equal(t, int64(0), result.FollowersCount)

	follows.AssertExpectations(t)
}

func TestToggleFollow_Self(t *testing.T) {
	follows := new(MockFollowRepository)
	uc := NewFollowUseCase(new(MockUserRepository), follows, nil, logger.NewNop())

	_, err := uc.ToggleFollow(context.Background(), "a", "a")

	assert.ErrorIs(t, err, ErrSelfFollow)
	follows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleFollow_UnknownTarget(t *testing.T) {
	users := new(MockUserRepository)
	uc := NewFollowUseCase(users, new(MockFollowRepository), nil, logger.NewNop())
	ctx := context.Background()

	users.On("GetByID", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.ToggleFollow(ctx, "a", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestToggleFollow_LookupFailureIsNotNotFound(t *testing.T) {
	users := new(MockUserRepository)
	follows := new(MockFollowRepository)
	uc := NewFollowUseCase(users, follows, nil, logger.NewNop())
	ctx := context.Background()

	users.On("GetByID", ctx, "b").Return(nil, errors.New("connection refused"))

	_, err := uc.ToggleFollow(ctx, "a", "b")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	follows.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleFollow_ConcurrentDuplicateReportsActualState(t *testing.T) {
	users := new(MockUserRepository)
	follows := new(MockFollowRepository)
	uc := NewFollowUseCase(users, follows, nil, logger.NewNop())
	ctx := context.Background()

	users.On("GetByID", ctx, "b").Return(&entity.User{ID: "b"}, nil)
	// Another request created the edge between our read and our insert;
	// the insert is a no-op and the re-read sees the edge.
	follows.On("Exists", ctx, "a", "b").Return(false, nil).Once()
	follows.On("Create", ctx, "a", "b").Return(nil).Once()
	follows.On("Exists", ctx, "a", "b").Return(true, nil).Once()
	follows.On("CountFollowers", ctx, "b").Return(int64(1), nil)

	result, err := uc.ToggleFollow(ctx, "a", "b")

	require.NoError(t, err)
	assert.True(t, result.Following)
	assert.Equal(t, int64(1), result.FollowersCount)
}

func TestToggleFollow_PublishesNotification(t *testing.T) {
	users := new(MockUserRepository)
	follows := new(MockFollowRepository)
	publisher := new(MockPublisher)
	uc := NewFollowUseCase(users, follows, publisher, logger.NewNop())
	ctx := context.Background()

	users.On("GetByID", ctx, "b").Return(&entity.User{ID: "b"}, nil)
	follows.On("Exists", ctx, "a", "b").Return(false, nil).Once()
	follows.On("Create", ctx, "a", "b").Return(nil)
	follows.On("Exists", ctx, "a", "b").Return(true, nil).Once()
	follows.On("CountFollowers", ctx, "b").Return(int64(1), nil)

	published := make(chan queue.Event, 1)
	publisher.On("PublishActivity", mock.Anything, mock.AnythingOfType("queue.Event")).
		Run(func(args mock.Arguments) { published <- args.Get(1).(queue.Event) }).
		Return(nil)

	_, err := uc.ToggleFollow(ctx, "a", "b")
	require.NoError(t, err)

	select {
	case event := <-published:
		assert.Equal(t, queue.EventFollow, event.Type)
		assert.Equal(t, "b", event.UserID)
		assert.Equal(t, "a", event.ActorID)
	case <-time.After(time.Second):
		t.Fatal("follow event was not published")
	}
}

func TestFollowers_ListWithViewerState(t *testing.T) {
	follows := new(MockFollowRepository)
	uc := NewFollowUseCase(new(MockUserRepository), follows, nil, logger.NewNop())
	ctx := context.Background()

	followers := []*entity.User{
		{ID: "c", Name: "Cleo", Username: "cleo"},
		{ID: "viewer", Name: "Me"},
	}
	follows.On("ListFollowers", ctx, "b").Return(followers, nil)
	follows.On("FollowingAmong", ctx, "viewer", []string{"c", "viewer"}).Return(map[string]bool{"c": true}, nil)

	list, err := uc.Followers(ctx, "viewer", "b")

	require.NoError(t, err)
	require.Len(t, list.Users, 2)
	assert.Equal(t, 2, list.Count)
	assert.Empty(t, list.Message)
	assert.True(t, list.Users[0].IsFollowing)
	assert.Equal(t, "cleo", list.Users[0].Handle)
	assert.True(t, list.Users[1].IsSelf)
	assert.False(t, list.Users[1].IsFollowing)
}

func TestFollowing_Empty(t *testing.T) {
	follows := new(MockFollowRepository)
	uc := NewFollowUseCase(new(MockUserRepository), follows, nil, logger.NewNop())
	ctx := context.Background()

	follows.On("ListFollowing", ctx, "b").Return([]*entity.User{}, nil)
	follows.On("FollowingAmong", ctx, "", []string{}).Return(map[string]bool{}, nil)

	list, err := uc.Following(ctx, "", "b")

	require.NoError(t, err)
	assert.Empty(t, list.Users)
	assert.Equal(t, 0, list.Count)
	assert.Equal(t, "Not following anyone yet", list.Message)
}

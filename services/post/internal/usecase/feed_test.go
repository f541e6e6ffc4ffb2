package usecase

import (
	"context"
	"testing"
	"time"

	"unvaultd/pkg/logger"
	"unvaultd/services/post/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePost(id, owner string, created time.Time) *entity.Post {
	return &entity.Post{
		ID:        id,
		UserID:    owner,
		Brand:     "Helmut Lang",
		CreatedAt: created,
		Images: []entity.PostImage{
			{ID: "img-2", ImageURL: "c.jpg", OrderIndex: 2},
			{ID: "img-0", ImageURL: "a.jpg", OrderIndex: 0},
			{ID: "img-1", ImageURL: "b.jpg", OrderIndex: 1},
		},
		LikedBy: []string{"viewer", "other"},
		SavedBy: []string{"other"},
	}
}

func TestBuildFeedItem(t *testing.T) {
	post := samplePost("p1", "owner", time.Now())

	item := BuildFeedItem(post, "viewer")

	require.Len(t, item.Images, 3)
	for i, img := range item.Images {
		assert.Equal(t, i, img.OrderIndex)
	}
	require.NotNil(t, item.CoverImage)
	assert.Equal(t, "a.jpg", item.CoverImage.ImageURL)
	assert.Equal(t, 2, item.LikesCount)
	assert.Equal(t, 1, item.SavesCount)
	assert.True(t, item.IsLiked)
	assert.False(t, item.IsSaved)
	assert.False(t, item.IsOwner)
	// The source order is left untouched.
	assert.Equal(t, "img-2", post.Images[0].ID)
}

func TestBuildFeedItem_Anonymous(t *testing.T) {
	item := BuildFeedItem(samplePost("p1", "owner", time.Now()), "")

	assert.False(t, item.IsLiked)
	assert.False(t, item.IsSaved)
	assert.False(t, item.IsOwner)
}

func TestBuildFeedItem_NoImages(t *testing.T) {
	item := BuildFeedItem(&entity.Post{ID: "p1"}, "viewer")

	assert.Nil(t, item.CoverImage)
	assert.NotNil(t, item.Images)
}

func TestBuildFeedPage_Empty(t *testing.T) {
	page := BuildFeedPage(nil, "viewer", entity.NewPage(0, 0), emptySavesMessage)

	assert.NotNil(t, page.Posts)
	assert.Equal(t, 0, page.Count)
	assert.Equal(t, "No saves yet", page.Message)
	assert.Equal(t, entity.DefaultPageLimit, page.Limit)
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, entity.Page{Limit: 20, Offset: 0}, entity.NewPage(0, -5))
	assert.Equal(t, entity.Page{Limit: 100, Offset: 40}, entity.NewPage(500, 40))
	assert.Equal(t, entity.Page{Limit: 10, Offset: 0}, entity.NewPage(10, 0))
}

func TestGlobalFeed_NewestFirst(t *testing.T) {
	repo := new(MockPostRepository)
	uc := NewFeedUseCase(repo, logger.NewNop())
	ctx := context.Background()
	page := entity.NewPage(0, 0)
	now := time.Now()

	repo.On("List", ctx, page).Return([]*entity.Post{
		samplePost("old", "a", now.Add(-2*time.Hour)),
		samplePost("new", "b", now),
	}, nil)

	feed, err := uc.GlobalFeed(ctx, "", page)

	require.NoError(t, err)
	require.Equal(t, 2, feed.Count)
	assert.Equal(t, "new", feed.Posts[0].ID)
	assert.Equal(t, "old", feed.Posts[1].ID)
	assert.Empty(t, feed.Message)
}

func TestProfileFeed_Empty(t *testing.T) {
	repo := new(MockPostRepository)
	uc := NewFeedUseCase(repo, logger.NewNop())
	ctx := context.Background()
	page := entity.NewPage(0, 0)

	repo.On("ListByUser", ctx, "u2", page).Return([]*entity.Post{}, nil)

	feed, err := uc.ProfileFeed(ctx, "u1", "u2", page)

	require.NoError(t, err)
	assert.Equal(t, "No listings yet", feed.Message)
}

func TestLikedPosts_OwnerOnly(t *testing.T) {
	repo := new(MockPostRepository)
	uc := NewFeedUseCase(repo, logger.NewNop())
	ctx := context.Background()
	page := entity.NewPage(0, 0)

	_, err := uc.LikedPosts(ctx, "u1", "u2", page)
	assert.ErrorIs(t, err, ErrPrivateTab)

	_, err = uc.SavedPosts(ctx, "", "u2", page)
	assert.ErrorIs(t, err, ErrPrivateTab)

	repo.AssertNotCalled(t, "ListReactedBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLikedPosts_Own(t *testing.T) {
	repo := new(MockPostRepository)
	uc := NewFeedUseCase(repo, logger.NewNop())
	ctx := context.Background()
	page := entity.NewPage(0, 0)

	repo.On("ListReactedBy", ctx, entity.ReactionLike, "u1", page).Return([]*entity.Post{}, nil)

	feed, err := uc.LikedPosts(ctx, "u1", "u1", page)

	require.NoError(t, err)
	assert.Equal(t, "No likes yet", feed.Message)
}

func TestProfileFeed_MalformedUserIDIsEmpty(t *testing.T) {
	repo := new(MockPostRepository)
	uc := NewFeedUseCase(repo, logger.NewNop())
	ctx := context.Background()
	page := entity.NewPage(0, 0)

	repo.On("ListByUser", ctx, "abc", page).Return(nil, &pgconn.PgError{Code: "22P02"})

	feed, err := uc.ProfileFeed(ctx, "u1", "abc", page)

	require.NoError(t, err)
	assert.Empty(t, feed.Posts)
	assert.Equal(t, "No listings yet", feed.Message)
}

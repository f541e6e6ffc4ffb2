package usecase

import (
	"context"
	"fmt"

	"unvaultd/pkg/database"
	"unvaultd/pkg/logger"
	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/repo/persistent"
)

type FeedUseCase interface {
	GlobalFeed(ctx context.Context, viewerID string, page entity.Page) (*entity.FeedPage, error)
	ProfileFeed(ctx context.Context, viewerID, userID string, page entity.Page) (*entity.FeedPage, error)
	LikedPosts(ctx context.Context, viewerID, ownerID string, page entity.Page) (*entity.FeedPage, error)
	SavedPosts(ctx context.Context, viewerID, ownerID string, page entity.Page) (*entity.FeedPage, error)
}

type feedUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewFeedUseCase(postRepo persistent.PostRepository, logger *logger.Logger) FeedUseCase {
	return &feedUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (uc *feedUseCase) GlobalFeed(ctx context.Context, viewerID string, page entity.Page) (*entity.FeedPage, error) {
	posts, err := uc.postRepo.List(ctx, page)
	if err != nil {
		uc.logger.Error("Failed to load feed: %v", err)
		return nil, fmt.Errorf("failed to load feed")
	}
	SortNewestFirst(posts)
	return BuildFeedPage(posts, viewerID, page, emptyListingsMessage), nil
}

func (uc *feedUseCase) ProfileFeed(ctx context.Context, viewerID, userID string, page entity.Page) (*entity.FeedPage, error) {
	posts, err := uc.postRepo.ListByUser(ctx, userID, page)
	if database.IsNotFound(err) {
		posts, err = nil, nil
	}
	if err != nil {
		uc.logger.Error("Failed to load listings of %s: %v", userID, err)
		return nil, fmt.Errorf("failed to load listings")
	}
	SortNewestFirst(posts)
	return BuildFeedPage(posts, viewerID, page, emptyListingsMessage), nil
}

// LikedPosts is the owner-only Likes tab, most recently liked first.
func (uc *feedUseCase) LikedPosts(ctx context.Context, viewerID, ownerID string, page entity.Page) (*entity.FeedPage, error) {
	return uc.reacted(ctx, entity.ReactionLike, viewerID, ownerID, page, emptyLikesMessage)
}

// SavedPosts is the owner-only Saves tab, most recently saved first.
func (uc *feedUseCase) SavedPosts(ctx context.Context, viewerID, ownerID string, page entity.Page) (*entity.FeedPage, error) {
	return uc.reacted(ctx, entity.ReactionSave, viewerID, ownerID, page, emptySavesMessage)
}

func (uc *feedUseCase) reacted(ctx context.Context, kind entity.Reaction, viewerID, ownerID string, page entity.Page, emptyMessage string) (*entity.FeedPage, error) {
	if viewerID == "" || viewerID != ownerID {
		return nil, ErrPrivateTab
	}

	posts, err := uc.postRepo.ListReactedBy(ctx, kind, ownerID, page)
	if err != nil {
		uc.logger.Error("Failed to load %s tab of %s: %v", kind, ownerID, err)
		return nil, fmt.Errorf("failed to load listings")
	}
	return BuildFeedPage(posts, viewerID, page, emptyMessage), nil
}

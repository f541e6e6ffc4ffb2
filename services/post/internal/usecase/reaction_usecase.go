package usecase

import (
	"context"
	"fmt"

	"unvaultd/pkg/database"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/queue"
	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/repo/persistent"
)

var reactionPriority = map[entity.Reaction]int{
	entity.ReactionLike: 5,
	entity.ReactionSave: 3,
}

type ReactionUseCase interface {
	ToggleLike(ctx context.Context, userID, postID string) (*entity.LikeResult, error)
	ToggleSave(ctx context.Context, userID, postID string) (*entity.SaveResult, error)
}

type reactionUseCase struct {
	postRepo     persistent.PostRepository
	reactionRepo persistent.ReactionRepository
	posts        EntityCache
	publisher    EventPublisher
	logger       *logger.Logger
}

func NewReactionUseCase(
	postRepo persistent.PostRepository,
	reactionRepo persistent.ReactionRepository,
	posts EntityCache,
	publisher EventPublisher,
	logger *logger.Logger,
) ReactionUseCase {
	return &reactionUseCase{
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		posts:        posts,
		publisher:    publisher,
		logger:       logger,
	}
}

func (uc *reactionUseCase) ToggleLike(ctx context.Context, userID, postID string) (*entity.LikeResult, error) {
	active, count, err := uc.toggle(ctx, entity.ReactionLike, userID, postID)
	if err != nil {
		return nil, err
	}
	return &entity.LikeResult{Liked: active, LikesCount: count}, nil
}

func (uc *reactionUseCase) ToggleSave(ctx context.Context, userID, postID string) (*entity.SaveResult, error) {
	active, count, err := uc.toggle(ctx, entity.ReactionSave, userID, postID)
	if err != nil {
		return nil, err
	}
	return &entity.SaveResult{Saved: active, SavesCount: count}, nil
}

// toggle flips the member's reaction and returns the membership read back
// after the write along with the fresh count.
func (uc *reactionUseCase) toggle(ctx context.Context, kind entity.Reaction, userID, postID string) (bool, int64, error) {
	ownerID, err := uc.postRepo.GetOwnerID(ctx, postID)
	if err != nil {
		if database.IsNotFound(err) {
			return false, 0, ErrPostNotFound
		}
		return false, 0, err
	}

	present, err := uc.reactionRepo.Exists(ctx, kind, postID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to read %s state: %w", kind, err)
	}

	if present {
		err = uc.reactionRepo.Delete(ctx, kind, postID, userID)
	} else {
		err = uc.reactionRepo.Create(ctx, kind, postID, userID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle %s on %s by %s: %v", kind, postID, userID, err)
		return false, 0, fmt.Errorf("failed to update %s", kind)
	}

	active, err := uc.reactionRepo.Exists(ctx, kind, postID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to read %s state: %w", kind, err)
	}
	count, err := uc.reactionRepo.Count(ctx, kind, postID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to count %ss: %w", kind, err)
	}

	uc.posts.Invalidate(ctx, postID)

	if active && !present && ownerID != userID {
		uc.notify(kind, ownerID, userID, postID)
	}

	return active, count, nil
}

func (uc *reactionUseCase) notify(kind entity.Reaction, ownerID, actorID, postID string) {
	if uc.publisher == nil {
		return
	}

	event := queue.Event{
		Type:     queue.EventType(kind),
		UserID:   ownerID,
		ActorID:  actorID,
		PostID:   postID,
		Priority: reactionPriority[kind],
	}
	go func() {
		if err := uc.publisher.PublishActivity(context.Background(), event); err != nil {
			uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish %s event: %v", kind, err)
		}
	}()
}

package usecase

import (
	"context"
	"fmt"

	"unvaultd/pkg/database"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/queue"
	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/repo/persistent"
)

const (
	followersEmptyMessage = "No followers yet"
	followingEmptyMessage = "Not following anyone yet"

	followPriority = 4
)

type FollowUseCase interface {
	ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.FollowResult, error)
	Followers(ctx context.Context, viewerID, userID string) (*entity.FollowList, error)
	Following(ctx context.Context, viewerID, userID string) (*entity.FollowList, error)
}

type followUseCase struct {
	userRepo   persistent.UserRepository
	followRepo persistent.FollowRepository
	publisher  EventPublisher
	logger     *logger.Logger
}

func NewFollowUseCase(
	userRepo persistent.UserRepository,
	followRepo persistent.FollowRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) FollowUseCase {
	return &followUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// ToggleFollow flips the follower -> target edge and reports the state read
// back after the write, so a concurrent duplicate toggle cannot mislead the caller.
func (uc *followUseCase) ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.FollowResult, error) {
	if followerID == targetID {
		return nil, ErrSelfFollow
	}
	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	following, err := uc.followRepo.Exists(ctx, followerID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to read follow state: %w", err)
	}

	if following {
		err = uc.followRepo.Delete(ctx, followerID, targetID)
	} else {
		err = uc.followRepo.Create(ctx, followerID, targetID)
	}
	if err != nil {
		uc.logger.Error("Failed to toggle follow %s -> %s: %v", followerID, targetID, err)
		return nil, fmt.Errorf("failed to update follow")
	}

	now, err := uc.followRepo.Exists(ctx, followerID, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to read follow state: %w", err)
	}
	count, err := uc.followRepo.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	if now && !following {
		uc.notify(followerID, targetID)
	}

	return &entity.FollowResult{Following: now, FollowersCount: count}, nil
}

func (uc *followUseCase) Followers(ctx context.Context, viewerID, userID string) (*entity.FollowList, error) {
	users, err := uc.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return uc.buildList(ctx, viewerID, users, followersEmptyMessage)
}

func (uc *followUseCase) Following(ctx context.Context, viewerID, userID string) (*entity.FollowList, error) {
	users, err := uc.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return uc.buildList(ctx, viewerID, users, followingEmptyMessage)
}

func (uc *followUseCase) buildList(ctx context.Context, viewerID string, users []*entity.User, emptyMessage string) (*entity.FollowList, error) {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	followed, err := uc.followRepo.FollowingAmong(ctx, viewerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read follow state: %w", err)
	}

	list := &entity.FollowList{Users: make([]entity.FollowEntry, 0, len(users)), Count: len(users)}
	for _, u := range users {
		list.Users = append(list.Users, entity.FollowEntry{
			ID:          u.ID,
			Name:        u.Name,
			Username:    u.Username,
			Handle:      u.Handle(),
			AvatarURL:   u.AvatarURL,
			IsFollowing: followed[u.ID],
			IsSelf:      u.ID == viewerID,
		})
	}
	if len(users) == 0 {
		list.Message = emptyMessage
	}
	return list, nil
}

func (uc *followUseCase) notify(followerID, targetID string) {
	if uc.publisher == nil {
		return
	}

	event := queue.Event{
		Type:     queue.EventFollow,
		UserID:   targetID,
		ActorID:  followerID,
		Priority: followPriority,
	}
	go func() {
		if err := uc.publisher.PublishActivity(context.Background(), event); err != nil {
			uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish follow event: %v", err)
		}
	}()
}

package persistent

import (
	"context"

	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	CountFollowers(ctx context.Context, userID string) (int64, error)
	CountFollowing(ctx context.Context, userID string) (int64, error)
	ListFollowers(ctx context.Context, userID string) ([]*entity.User, error)
	ListFollowing(ctx context.Context, userID string) ([]*entity.User, error)
	FollowingAmong(ctx context.Context, followerID string, candidateIDs []string) (map[string]bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the edge; a concurrent duplicate is a no-op.
func (r *followRepository) Create(ctx context.Context, followerID, followingID string) error {
	follow := &model.FollowModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowModel{}).Error
}

func (r *followRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) ListFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	return r.listUsers(ctx, "follows.follower_id", "follows.following_id = ?", userID)
}

func (r *followRepository) ListFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	return r.listUsers(ctx, "follows.following_id", "follows.follower_id = ?", userID)
}

func (r *followRepository) FollowingAmong(ctx context.Context, followerID string, candidateIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(candidateIDs))
	if followerID == "" || len(candidateIDs) == 0 {
		return result, nil
	}

	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("follower_id = ? AND following_id IN ?", followerID, candidateIDs).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

func (r *followRepository) listUsers(ctx context.Context, joinColumn, where string, userID string) ([]*entity.User, error) {
	var userModels []model.UserModel
	err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("INNER JOIN follows ON users.id = "+joinColumn).
		Where(where, userID).
		Order("follows.created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

package persistent

import (
	"context"

	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository stores likes and saves, one row per (post, member).
type ReactionRepository interface {
	Exists(ctx context.Context, kind entity.Reaction, postID, userID string) (bool, error)
	Create(ctx context.Context, kind entity.Reaction, postID, userID string) error
	Delete(ctx context.Context, kind entity.Reaction, postID, userID string) error
	Count(ctx context.Context, kind entity.Reaction, postID string) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Exists(ctx context.Context, kind entity.Reaction, postID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(reactionModel(kind, "", "")).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// Create is a no-op when the row already exists, so a double submit is harmless.
func (r *reactionRepository) Create(ctx context.Context, kind entity.Reaction, postID, userID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(reactionModel(kind, postID, userID)).Error
}

func (r *reactionRepository) Delete(ctx context.Context, kind entity.Reaction, postID, userID string) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(reactionModel(kind, "", "")).Error
}

func (r *reactionRepository) Count(ctx context.Context, kind entity.Reaction, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(reactionModel(kind, "", "")).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func reactionModel(kind entity.Reaction, postID, userID string) interface{} {
	if kind == entity.ReactionSave {
		return &model.SaveModel{PostID: postID, UserID: userID}
	}
	return &model.LikeModel{PostID: postID, UserID: userID}
}

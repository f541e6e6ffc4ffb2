package persistent

import (
	"context"

	"unvaultd/services/notification/internal/model"

	"gorm.io/gorm"
)

type ActorRepository interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

type actorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) ActorRepository {
	return &actorRepository{db: db}
}

func (r *actorRepository) DisplayName(ctx context.Context, userID string) (string, error) {
	var actor model.ActorModel
	err := r.db.WithContext(ctx).
		Select("id", "email", "name", "username").
		Where("id = ?", userID).
		First(&actor).Error
	if err != nil {
		return "", err
	}
	return ToActorName(&actor), nil
}

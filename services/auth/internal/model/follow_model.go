package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	FollowerID  string `gorm:"type:uuid;not null"`
	FollowingID string `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

func (FollowModel) TableName() string {
	return "follows"
}

func (f *FollowModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

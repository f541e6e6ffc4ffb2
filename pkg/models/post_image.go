package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostImage positions are contiguous from 0; position 0 is the cover.
type PostImage struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_images_position" json:"post_id"`
	ImageURL   string    `gorm:"type:varchar(500);not null" json:"image_url"`
	StorageKey string    `gorm:"type:varchar(500)" json:"-"`
	OrderIndex int       `gorm:"not null;default:0;uniqueIndex:idx_post_images_position" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

func (pi *PostImage) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return nil
}

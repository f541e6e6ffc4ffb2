package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a garment listing.
type Post struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Brand           string    `gorm:"type:varchar(100);not null" json:"brand"`
	GarmentType     string    `gorm:"type:varchar(100);not null" json:"garment_type"`
	Color           string    `gorm:"type:varchar(50);not null" json:"color"`
	SizeFit         string    `gorm:"type:varchar(100)" json:"size_fit"`
	BrandSocialLink *string   `gorm:"type:varchar(500)" json:"brand_social_link"`
	BrandWebsite    *string   `gorm:"type:varchar(500)" json:"brand_website"`
	Description     string    `gorm:"type:text" json:"description"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Images []PostImage `gorm:"foreignKey:PostID" json:"images,omitempty"`
	User   User        `gorm:"foreignKey:UserID" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

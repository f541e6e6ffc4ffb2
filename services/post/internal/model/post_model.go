package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID              string           `gorm:"type:uuid;primary_key" json:"id"`
	UserID          string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Brand           string           `gorm:"type:varchar(100);not null" json:"brand"`
	GarmentType     string           `gorm:"type:varchar(100);not null" json:"garment_type"`
	Color           string           `gorm:"type:varchar(50);not null" json:"color"`
	SizeFit         string           `gorm:"type:varchar(100)" json:"size_fit"`
	BrandSocialLink *string          `gorm:"type:varchar(500)" json:"brand_social_link"`
	BrandWebsite    *string          `gorm:"type:varchar(500)" json:"brand_website"`
	Description     string           `gorm:"type:text" json:"description"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Images          []PostImageModel `gorm:"foreignKey:PostID" json:"images,omitempty"`
	User            AuthorModel      `gorm:"foreignKey:UserID" json:"user"`
	Likes           []LikeModel      `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Saves           []SaveModel      `gorm:"foreignKey:PostID" json:"saves,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PostImageModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID     string    `gorm:"type:uuid;not null;index" json:"post_id"`
	ImageURL   string    `gorm:"type:varchar(500);not null" json:"image_url"`
	StorageKey string    `gorm:"type:varchar(500)" json:"storage_key"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PostImageModel) TableName() string {
	return "post_images"
}

func (pi *PostImageModel) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return nil
}

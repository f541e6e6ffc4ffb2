package entity

import "time"

type Reaction string

const (
	ReactionLike Reaction = "like"
	ReactionSave Reaction = "save"
)

// Post is a garment listing with its raw like and save rows.
type Post struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Brand           string      `json:"brand"`
	GarmentType     string      `json:"garment_type"`
	Color           string      `json:"color"`
	SizeFit         string      `json:"size_fit"`
	BrandSocialLink *string     `json:"brand_social_link"`
	BrandWebsite    *string     `json:"brand_website"`
	Description     string      `json:"description"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Images          []PostImage `json:"images"`
	Author          Author      `json:"author"`
	LikedBy         []string    `json:"liked_by,omitempty"`
	SavedBy         []string    `json:"saved_by,omitempty"`
}

type PostImage struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	ImageURL   string    `json:"image_url"`
	StorageKey string    `json:"-"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

type Author struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatar_url"`
}

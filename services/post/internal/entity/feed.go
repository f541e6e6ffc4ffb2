package entity

import "time"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage clamps limit to 1..100 (20 when unset) and offset to >= 0.
func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

// FeedItem is a listing as one viewer sees it.
type FeedItem struct {
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
	Author          Author      `json:"author"`
	Images          []PostImage `json:"images"`
	CoverImage      *PostImage  `json:"cover_image"`
	LikesCount      int         `json:"likes_count"`
	SavesCount      int         `json:"saves_count"`
	IsLiked         bool        `json:"is_liked"`
	IsSaved         bool        `json:"is_saved"`
	IsOwner         bool        `json:"is_owner"`
}

type FeedPage struct {
	Posts   []FeedItem `json:"posts"`
	Count   int        `json:"count"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	Message string     `json:"message,omitempty"`
}

type LikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

type SaveResult struct {
	Saved      bool  `json:"saved"`
	SavesCount int64 `json:"saves_count"`
}

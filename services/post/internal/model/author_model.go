package model

// AuthorModel is the read-only slice of users a listing needs.
type AuthorModel struct {
	ID        string  `gorm:"type:uuid;primary_key" json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Username  *string `json:"username"`
	AvatarURL string  `json:"avatar_url"`
}

func (AuthorModel) TableName() string {
	return "users"
}

// FollowModel is read to find who hears about a member's new listing.
type FollowModel struct {
	FollowerID  string `gorm:"type:uuid"`
	FollowingID string `gorm:"type:uuid"`
}

func (FollowModel) TableName() string {
	return "follows"
}

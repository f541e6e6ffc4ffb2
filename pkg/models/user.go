package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                string     `gorm:"type:uuid;primary_key" json:"id"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	Password          string     `json:"-"`
	Name              string     `gorm:"type:varchar(50)" json:"name"`
	Username          *string    `gorm:"type:varchar(20);uniqueIndex" json:"username"`
	AvatarURL         string     `gorm:"type:varchar(500)" json:"avatar_url"`
	OAuthSubject      *string    `gorm:"column:oauth_subject;uniqueIndex" json:"-"`
	UsernameChangedAt *time.Time `json:"username_changed_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

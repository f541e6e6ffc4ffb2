package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID                string `gorm:"type:uuid;primary_key"`
	Email             string `gorm:"uniqueIndex;not null"`
	Password          string
	Name              string  `gorm:"type:varchar(50)"`
	Username          *string `gorm:"type:varchar(20);uniqueIndex"`
	AvatarURL         string  `gorm:"type:varchar(500)"`
	OAuthSubject      *string `gorm:"column:oauth_subject;uniqueIndex"`
	UsernameChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

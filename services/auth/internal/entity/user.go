package entity

import (
	"strings"
	"time"
)

const RoleMember = "member"

type User struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Password          string     `json:"-"`
	Name              string     `json:"name"`
	Username          string     `json:"username"`
	AvatarURL         string     `json:"avatar_url"`
	OAuthSubject      string     `json:"-"`
	UsernameChangedAt *time.Time `json:"username_changed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// DisplayName falls back to the email local part, then to "Account".
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "Account"
}

// Handle is the @-name shown in lists. Members without a username get user_<id prefix>.
func (u *User) Handle() string {
	if u.Username != "" {
		return u.Username
	}
	id := u.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return "user_" + id
}

package persistent

import (
	"strings"

	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                m.ID,
		Email:             m.Email,
		Password:          m.Password,
		Name:              m.Name,
		Username:          deref(m.Username),
		AvatarURL:         m.AvatarURL,
		OAuthSubject:      deref(m.OAuthSubject),
		UsernameChangedAt: m.UsernameChangedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:                e.ID,
		Email:             e.Email,
		Password:          e.Password,
		Name:              e.Name,
		Username:          nullable(strings.ToLower(e.Username)),
		AvatarURL:         e.AvatarURL,
		OAuthSubject:      nullable(e.OAuthSubject),
		UsernameChangedAt: e.UsernameChangedAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullable maps "" to NULL so unique indexes ignore unset values.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package persistent

import (
	"strings"

	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:              m.ID,
		UserID:          m.UserID,
		Brand:           m.Brand,
		GarmentType:     m.GarmentType,
		Color:           m.Color,
		SizeFit:         m.SizeFit,
		BrandSocialLink: m.BrandSocialLink,
		BrandWebsite:    m.BrandWebsite,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		Images:          make([]entity.PostImage, len(m.Images)),
		Author:          ToAuthorEntity(&m.User),
	}

	for i := range m.Images {
		post.Images[i] = ToPostImageEntity(&m.Images[i])
	}
	for _, like := range m.Likes {
		post.LikedBy = append(post.LikedBy, like.UserID)
	}
	for _, save := range m.Saves {
		post.SavedBy = append(post.SavedBy, save.UserID)
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:              e.ID,
		UserID:          e.UserID,
		Brand:           e.Brand,
		GarmentType:     e.GarmentType,
		Color:           e.Color,
		SizeFit:         e.SizeFit,
		BrandSocialLink: e.BrandSocialLink,
		BrandWebsite:    e.BrandWebsite,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if len(e.Images) > 0 {
		post.Images = make([]model.PostImageModel, len(e.Images))
		for i := range e.Images {
			post.Images[i] = *ToPostImageModel(&e.Images[i])
		}
	}

	return post
}

func ToPostImageEntity(m *model.PostImageModel) entity.PostImage {
	if m == nil {
		return entity.PostImage{}
	}

	return entity.PostImage{
		ID:         m.ID,
		PostID:     m.PostID,
		ImageURL:   m.ImageURL,
		StorageKey: m.StorageKey,
		OrderIndex: m.OrderIndex,
		CreatedAt:  m.CreatedAt,
	}
}

func ToPostImageModel(e *entity.PostImage) *model.PostImageModel {
	if e == nil {
		return nil
	}

	return &model.PostImageModel{
		ID:         e.ID,
		PostID:     e.PostID,
		ImageURL:   e.ImageURL,
		StorageKey: e.StorageKey,
		OrderIndex: e.OrderIndex,
		CreatedAt:  e.CreatedAt,
	}
}

// ToAuthorEntity resolves the display name and handle the same way the
// member's own profile does.
func ToAuthorEntity(m *model.AuthorModel) entity.Author {
	if m == nil || m.ID == "" {
		return entity.Author{DisplayName: "Account"}
	}

	author := entity.Author{
		ID:          m.ID,
		Name:        m.Name,
		DisplayName: strings.TrimSpace(m.Name),
		AvatarURL:   m.AvatarURL,
	}
	if m.Username != nil {
		author.Username = *m.Username
	}

	if author.DisplayName == "" {
		if at := strings.Index(m.Email, "@"); at > 0 {
			author.DisplayName = m.Email[:at]
		} else {
			author.DisplayName = "Account"
		}
	}

	author.Handle = author.Username
	if author.Handle == "" {
		prefix := m.ID
		if len(prefix) > 8 {
			prefix = prefix[:8]
		}
		author.Handle = "user_" + prefix
	}

	return author
}

package usecase

import (
	"sort"

	"unvaultd/services/post/internal/entity"
)

const (
	emptyListingsMessage = "No listings yet"
	emptyLikesMessage    = "No likes yet"
	emptySavesMessage    = "No saves yet"
)

// BuildFeedItem derives the viewer's view of a listing: images in
// order_index order with index 0 as cover, reaction counts and flags.
func BuildFeedItem(post *entity.Post, viewerID string) entity.FeedItem {
	images := make([]entity.PostImage, len(post.Images))
	copy(images, post.Images)
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].OrderIndex < images[j].OrderIndex
	})

	item := entity.FeedItem{
		ID:              post.ID,
		UserID:          post.UserID,
		Brand:           post.Brand,
		GarmentType:     post.GarmentType,
		Color:           post.Color,
		SizeFit:         post.SizeFit,
		BrandSocialLink: post.BrandSocialLink,
		BrandWebsite:    post.BrandWebsite,
		Description:     post.Description,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
		Author:          post.Author,
		Images:          images,
		LikesCount:      len(post.LikedBy),
		SavesCount:      len(post.SavedBy),
		IsLiked:         contains(post.LikedBy, viewerID),
		IsSaved:         contains(post.SavedBy, viewerID),
		IsOwner:         viewerID != "" && viewerID == post.UserID,
	}
	if len(images) > 0 {
		cover := images[0]
		item.CoverImage = &cover
	}
	return item
}

// BuildFeedPage keeps the repository order and never returns a nil slice.
func BuildFeedPage(posts []*entity.Post, viewerID string, page entity.Page, emptyMessage string) *entity.FeedPage {
	result := &entity.FeedPage{
		Posts:  make([]entity.FeedItem, 0, len(posts)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, post := range posts {
		result.Posts = append(result.Posts, BuildFeedItem(post, viewerID))
	}
	result.Count = len(result.Posts)
	if result.Count == 0 {
		result.Message = emptyMessage
	}
	return result
}

// SortNewestFirst orders by created_at descending.
func SortNewestFirst(posts []*entity.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func contains(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

package persistent

import (
	"context"
	"time"

	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetOwnerID(ctx context.Context, id string) (string, error)
	GetAuthor(ctx context.Context, userID string) (entity.Author, error)
	List(ctx context.Context, page entity.Page) ([]*entity.Post, error)
	ListByUser(ctx context.Context, userID string, page entity.Page) ([]*entity.Post, error)
	ListReactedBy(ctx context.Context, kind entity.Reaction, userID string, page entity.Page) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
	FollowerIDs(ctx context.Context, userID string) ([]string, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the listing and its images in one transaction.
func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		images := postModel.Images
		postModel.Images = nil

		if err := tx.Omit(clause.Associations).Create(postModel).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].PostID = postModel.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		postModel.Images = images

		author := post.Author
		*post = *ToPostEntity(postModel)
		post.Author = author
		return nil
	})
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.aggregated(ctx).Where("posts.id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetOwnerID(ctx context.Context, id string) (string, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", id).First(&postModel).Error; err != nil {
		return "", err
	}
	return postModel.UserID, nil
}

func (r *postRepository) GetAuthor(ctx context.Context, userID string) (entity.Author, error) {
	var author model.AuthorModel
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&author).Error; err != nil {
		return entity.Author{}, err
	}
	return ToAuthorEntity(&author), nil
}

func (r *postRepository) List(ctx context.Context, page entity.Page) ([]*entity.Post, error) {
	return r.find(r.aggregated(ctx).Order("posts.created_at DESC"), page)
}

func (r *postRepository) ListByUser(ctx context.Context, userID string, page entity.Page) ([]*entity.Post, error) {
	query := r.aggregated(ctx).Where("posts.user_id = ?", userID).Order("posts.created_at DESC")
	return r.find(query, page)
}

// ListReactedBy returns the posts a member liked or saved, most recent reaction first.
func (r *postRepository) ListReactedBy(ctx context.Context, kind entity.Reaction, userID string, page entity.Page) ([]*entity.Post, error) {
	table := reactionTable(kind)
	query := r.aggregated(ctx).
		Joins("INNER JOIN "+table+" ON "+table+".post_id = posts.id").
		Where(table+".user_id = ?", userID).
		Order(table + ".created_at DESC")
	return r.find(query, page)
}

func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Model(&model.PostModel{ID: post.ID}).Updates(map[string]interface{}{
		"brand":             post.Brand,
		"garment_type":      post.GarmentType,
		"color":             post.Color,
		"size_fit":          post.SizeFit,
		"brand_social_link": post.BrandSocialLink,
		"brand_website":     post.BrandWebsite,
		"description":       post.Description,
		"updated_at":        time.Now(),
	}).Error
}

// Delete removes reactions, images and the listing in one transaction.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.SaveModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostImageModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.PostModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *postRepository) FollowerIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.FollowModel{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *postRepository) aggregated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.PostModel{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_images.order_index ASC")
		}).
		Preload("User").
		Preload("Likes").
		Preload("Saves")
}

func (r *postRepository) find(query *gorm.DB, page entity.Page) ([]*entity.Post, error) {
	if page.Limit > 0 {
		query = query.Limit(page.Limit).Offset(page.Offset)
	}

	var postModels []model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func reactionTable(kind entity.Reaction) string {
	if kind == entity.ReactionSave {
		return model.SaveModel{}.TableName()
	}
	return model.LikeModel{}.TableName()
}

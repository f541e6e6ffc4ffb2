package persistent

import (
	"context"
	"strings"

	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByOAuthSubject(ctx context.Context, subject string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	LinkOAuth(ctx context.Context, id, email, subject string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.first(ctx, "username = ?", strings.ToLower(username))
}

func (r *userRepository) GetByOAuthSubject(ctx context.Context, subject string) (*entity.User, error) {
	return r.first(ctx, "oauth_subject = ?", subject)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Save(userModel).Error; err != nil {
		return err
	}
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

// LinkOAuth refreshes the email of an existing member and records the
// provider subject. Name and avatar are left as the member set them.
func (r *userRepository) LinkOAuth(ctx context.Context, id, email, subject string) error {
	return r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email":         email,
			"oauth_subject": subject,
		}).Error
}

func (r *userRepository) first(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"unvaultd/pkg/database"
	"unvaultd/pkg/logger"
	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/repo/persistent"

	"github.com/google/uuid"
)

const maxNameLength = 50

type ProfileUpdate struct {
	Name     string
	Username string
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, viewerID, userID string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error)
	UploadAvatar(ctx context.Context, userID string, body io.Reader, ext, contentType string) (*entity.User, error)
}

type profileUseCase struct {
	userRepo   persistent.UserRepository
	followRepo persistent.FollowRepository
	storage    ObjectStorage
	users      EntityCache
	logger     *logger.Logger
	now        func() time.Time
}

func NewProfileUseCase(
	userRepo persistent.UserRepository,
	followRepo persistent.FollowRepository,
	storage ObjectStorage,
	users EntityCache,
	logger *logger.Logger,
) ProfileUseCase {
	return &profileUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		storage:    storage,
		users:      users,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *profileUseCase) GetProfile(ctx context.Context, viewerID, userID string) (*entity.Profile, error) {
	user, err := loadUser(ctx, uc.userRepo, uc.users, userID)
	if err != nil {
		return nil, err
	}

	followers, err := uc.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	following, err := uc.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}

	isFollowing := false
	if viewerID != "" && viewerID != userID {
		isFollowing, err = uc.followRepo.Exists(ctx, viewerID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to read follow state: %w", err)
		}
	}

	return &entity.Profile{
		ID:             user.ID,
		Name:           user.Name,
		DisplayName:    user.DisplayName(),
		Username:       user.Username,
		Handle:         user.Handle(),
		AvatarURL:      user.AvatarURL,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		IsOwner:        viewerID == userID,
	}, nil
}

// UpdateProfile applies a display-name and username edit. The name is always
// editable; a username change must be well formed, outside the 14-day
// cooldown and unused by anyone else.
func (uc *profileUseCase) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error) {
	name := strings.TrimSpace(update.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	proposed := strings.TrimSpace(update.Username)

	if !strings.EqualFold(proposed, user.Username) {
		if err := ValidateUsername(proposed); err != nil {
			return nil, err
		}

		now := uc.now()
		if days := CooldownDaysRemaining(user.UsernameChangedAt, now); days > 0 {
			return nil, &ProfileEditError{Reason: ReasonCooldown, DaysRemaining: days}
		}

		lower := strings.ToLower(proposed)
		holder, err := uc.userRepo.GetByUsername(ctx, lower)
		if err == nil && holder.ID != user.ID {
			return nil, &ProfileEditError{Reason: ReasonTaken}
		}
		if err != nil && !database.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}

		user.Username = lower
		user.UsernameChangedAt = &now
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		// Lost a race for the same username.
		if database.IsUniqueViolation(err) {
			return nil, &ProfileEditError{Reason: ReasonTaken}
		}
		uc.logger.Error("Failed to update profile %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	uc.users.Invalidate(ctx, userID)
	user.Password = ""
	return user, nil
}

func (uc *profileUseCase) UploadAvatar(ctx context.Context, userID string, body io.Reader, ext, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s/%s%s", userID, uuid.New().String(), ext)
	avatarURL, err := uc.storage.UploadFile(key, body, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	previous := user.AvatarURL
	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(ctx, user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		if delErr := uc.storage.DeleteFile(key); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned avatar %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("failed to update user")
	}

	if oldKey := uc.storage.KeyFromURL(previous); oldKey != "" {
		if err := uc.storage.DeleteFile(oldKey); err != nil {
			uc.logger.Warn("Failed to remove previous avatar %s: %v", oldKey, err)
		}
	}

	uc.users.Invalidate(ctx, userID)
	user.Password = ""
	return user, nil
}

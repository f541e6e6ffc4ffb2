package usecase

import (
	"context"
	"fmt"
	"strings"

	"unvaultd/pkg/database"
	"unvaultd/pkg/jwt"
	"unvaultd/pkg/logger"
	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

// OAuthIdentity is what the provider tells us about the member after the code exchange.
type OAuthIdentity struct {
	Provider       string
	ProviderUserID string
	Email          string
	Name           string
	AvatarURL      string
}

func (o OAuthIdentity) Subject() string {
	return o.Provider + ":" + o.ProviderUserID
}

type AuthUseCase interface {
	SignUp(ctx context.Context, fullName, email, password string) (*entity.User, string, error)
	SignIn(ctx context.Context, email, password string) (*entity.User, string, error)
	CompleteOAuth(ctx context.Context, identity OAuthIdentity) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	users      EntityCache
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	users EntityCache,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		users:      users,
		logger:     logger,
	}
}

func (uc *authUseCase) SignUp(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !database.IsNotFound(err) {
		uc.logger.Error("Failed to look up email: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Name:     strings.TrimSpace(fullName),
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	return uc.issue(user)
}

func (uc *authUseCase) SignIn(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// OAuth-only members have no password to compare against.
	if user.Password == "" {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	return uc.issue(user)
}

// CompleteOAuth inserts the member on first sign-in. Returning members only
// get their email refreshed; name and avatar stay as they set them.
func (uc *authUseCase) CompleteOAuth(ctx context.Context, identity OAuthIdentity) (*entity.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, "", ErrOAuthProfile
	}
	subject := identity.Subject()

	user, err := uc.userRepo.GetByOAuthSubject(ctx, subject)
	if err != nil && !database.IsNotFound(err) {
		uc.logger.Error("Failed to look up oauth subject: %v", err)
		return nil, "", fmt.Errorf("failed to complete sign-in")
	}
	if user == nil {
		user, err = uc.userRepo.GetByEmail(ctx, email)
		if err != nil && !database.IsNotFound(err) {
			uc.logger.Error("Failed to look up email: %v", err)
			return nil, "", fmt.Errorf("failed to complete sign-in")
		}
	}

	if user == nil {
		user = &entity.User{
			Email:        email,
			Name:         strings.TrimSpace(identity.Name),
			AvatarURL:    identity.AvatarURL,
			OAuthSubject: subject,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			uc.logger.Error("Failed to create oauth user: %v", err)
			return nil, "", fmt.Errorf("failed to complete sign-in")
		}
		uc.logger.Info("Created member %s via %s", user.ID, identity.Provider)
		return uc.issue(user)
	}

	if user.Email != email || user.OAuthSubject != subject {
		if err := uc.userRepo.LinkOAuth(ctx, user.ID, email, subject); err != nil {
			uc.logger.Error("Failed to refresh oauth user %s: %v", user.ID, err)
			return nil, "", fmt.Errorf("failed to complete sign-in")
		}
		user.Email = email
		user.OAuthSubject = subject
		uc.users.Invalidate(ctx, user.ID)
	}

	return uc.issue(user)
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	return loadUser(ctx, uc.userRepo, uc.users, userID)
}

func (uc *authUseCase) issue(user *entity.User) (*entity.User, string, error) {
	token, err := uc.jwtService.GenerateToken(user.ID, entity.RoleMember)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

// loadUser reads through the member cache.
func loadUser(ctx context.Context, repo persistent.UserRepository, users EntityCache, userID string) (*entity.User, error) {
	var cached entity.User
	if users.Get(ctx, userID, &cached) {
		return &cached, nil
	}

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""
	_ = users.Set(ctx, userID, user)
	return user, nil
}

package http

import (
	"context"
	"io"
	"net/http"

	"unvaultd/pkg/oauth"
	"unvaultd/services/auth/internal/entity"
	"unvaultd/services/auth/internal/usecase"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) SignUp(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, fullName, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) SignIn(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) CompleteOAuth(ctx context.Context, identity usecase.OAuthIdentity) (*entity.User, string, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) GetProfile(ctx context.Context, viewerID, userID string) (*entity.Profile, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUseCase) UpdateProfile(ctx context.Context, userID string, update usecase.ProfileUpdate) (*entity.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockProfileUseCase) UploadAvatar(ctx context.Context, userID string, body io.Reader, ext, contentType string) (*entity.User, error) {
	args := m.Called(ctx, userID, body, ext, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.ProfileUseCase = (*MockProfileUseCase)(nil)

type MockFollowUseCase struct {
	mock.Mock
}

func (m *MockFollowUseCase) ToggleFollow(ctx context.Context, followerID, targetID string) (*entity.FollowResult, error) {
	args := m.Called(ctx, followerID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowResult), args.Error(1)
}

func (m *MockFollowUseCase) Followers(ctx context.Context, viewerID, userID string) (*entity.FollowList, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowList), args.Error(1)
}

func (m *MockFollowUseCase) Following(ctx context.Context, viewerID, userID string) (*entity.FollowList, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowList), args.Error(1)
}

var _ usecase.FollowUseCase = (*MockFollowUseCase)(nil)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Begin(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
}

func (m *MockProvider) Complete(w http.ResponseWriter, r *http.Request) (goth.User, error) {
	args := m.Called(w, r)
	return args.Get(0).(goth.User), args.Error(1)
}

func (m *MockProvider) Logout(w http.ResponseWriter, r *http.Request) error {
	args := m.Called(w, r)
	return args.Error(0)
}

var _ oauth.Provider = (*MockProvider)(nil)

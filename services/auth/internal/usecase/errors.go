package usecase

import (
	"context"
	"errors"
	"io"

	"unvaultd/pkg/queue"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrInvalidName        = errors.New("name must be between 1 and 50 characters")
	ErrOAuthProfile       = errors.New("oauth profile has no email")
)

// ObjectStorage is satisfied by *s3.Client.
type ObjectStorage interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
	KeyFromURL(url string) string
}

// EventPublisher is satisfied by *queue.Client.
type EventPublisher interface {
	PublishActivity(ctx context.Context, event queue.Event) error
}

// EntityCache is satisfied by *cache.EntityCache.
type EntityCache interface {
	Get(ctx context.Context, id string, dst interface{}) bool
	Set(ctx context.Context, id string, value interface{}) error
	Invalidate(ctx context.Context, ids ...string) error
}

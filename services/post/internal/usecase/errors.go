package usecase

import (
	"context"
	"errors"
	"io"

	"unvaultd/pkg/queue"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrNotOwner       = errors.New("you can only edit your own listings")
	ErrPrivateTab     = errors.New("likes and saves are only visible to their owner")
	ErrNoImages       = errors.New("at least one image is required")
	ErrTooManyImages  = errors.New("maximum 5 images allowed")
	ErrMissingFields  = errors.New("brand, garment type and color are required")
	ErrFieldTooLong   = errors.New("listing field is too long")
	ErrInvalidImage   = errors.New("invalid image format. Only jpg, jpeg, png, gif, webp are allowed")
	ErrUploadFailed   = errors.New("failed to upload images")
	ErrListingStorage = errors.New("failed to save listing")
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

package usecase

import (
	"context"
	"fmt"
	"time"

	"unvaultd/pkg/database"
	"unvaultd/pkg/logger"
	"unvaultd/pkg/queue"
	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/repo/persistent"
)

const newPostPriority = 2

type PostUseCase interface {
	CreatePost(ctx context.Context, userID string, input ListingInput, images []ImageUpload) (*entity.FeedItem, error)
	GetPost(ctx context.Context, postID, viewerID string) (*entity.FeedItem, error)
	UpdatePost(ctx context.Context, postID, userID string, input ListingInput) (*entity.FeedItem, error)
	DeletePost(ctx context.Context, postID, userID string) error
}

type postUseCase struct {
	postRepo  persistent.PostRepository
	storage   ObjectStorage
	posts     EntityCache
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	storage ObjectStorage,
	posts EntityCache,
	publisher EventPublisher,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		storage:   storage,
		posts:     posts,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreatePost validates everything before the first upload, then stores the
// images and inserts the listing with its images in one transaction.
func (uc *postUseCase) CreatePost(ctx context.Context, userID string, input ListingInput, images []ImageUpload) (*entity.FeedItem, error) {
	if err := ValidateImages(images); err != nil {
		return nil, err
	}
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stamp := uc.now().UnixNano()
	postImages := make([]entity.PostImage, 0, len(images))
	for i, img := range images {
		key := fmt.Sprintf("post-images/%s/%d-%d%s", userID, stamp, i, img.Ext())

		imageURL, err := uc.upload(key, img)
		if err != nil {
			uc.logger.Error("Failed to upload listing image %d: %v", i, err)
			uc.removeImages(postImages)
			return nil, ErrUploadFailed
		}

		postImages = append(postImages, entity.PostImage{
			ImageURL:   imageURL,
			StorageKey: key,
			OrderIndex: i,
		})
	}

	post := &entity.Post{
		UserID:          userID,
		Brand:           input.Brand,
		GarmentType:     input.GarmentType,
		Color:           input.Color,
		SizeFit:         input.SizeFit,
		BrandSocialLink: NormalizeURL(input.BrandSocialLink),
		BrandWebsite:    NormalizeURL(input.BrandWebsite),
		Description:     input.Description,
		Images:          postImages,
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create listing: %v", err)
		uc.removeImages(postImages)
		return nil, ErrListingStorage
	}

	uc.logger.Info("Listing %s created by %s with %d image(s)", post.ID, userID, len(postImages))
	uc.announce(post.ID, userID)

	// Read back so the author block is populated.
	created, err := uc.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		item := BuildFeedItem(post, userID)
		return &item, nil
	}
	item := BuildFeedItem(created, userID)
	return &item, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID, viewerID string) (*entity.FeedItem, error) {
	post, err := uc.load(ctx, postID)
	if err != nil {
		return nil, err
	}
	item := BuildFeedItem(post, viewerID)
	return &item, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, postID, userID string, input ListingInput) (*entity.FeedItem, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrNotOwner
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post.Brand = input.Brand
	post.GarmentType = input.GarmentType
	post.Color = input.Color
	post.SizeFit = input.SizeFit
	post.BrandSocialLink = NormalizeURL(input.BrandSocialLink)
	post.BrandWebsite = NormalizeURL(input.BrandWebsite)
	post.Description = input.Description
	post.UpdatedAt = uc.now()

	if err := uc.postRepo.Update(ctx, post); err != nil {
		uc.logger.Error("Failed to update listing %s: %v", postID, err)
		return nil, ErrListingStorage
	}

	uc.posts.Invalidate(ctx, postID)
	item := BuildFeedItem(post, userID)
	return &item, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if database.IsNotFound(err) {
			return ErrPostNotFound
		}
		return err
	}
	if post.UserID != userID {
		return ErrNotOwner
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		if database.IsNotFound(err) {
			return ErrPostNotFound
		}
		uc.logger.Error("Failed to delete listing %s: %v", postID, err)
		return fmt.Errorf("failed to delete listing")
	}

	uc.posts.Invalidate(ctx, postID)
	uc.removeImages(post.Images)
	return nil
}

// load reads through the listing cache. The cached entry leaves the author
// out: profile edits do not touch post:<id>, so the author is always read live.
func (uc *postUseCase) load(ctx context.Context, postID string) (*entity.Post, error) {
	var cached entity.Post
	if uc.posts.Get(ctx, postID, &cached) {
		author, err := uc.postRepo.GetAuthor(ctx, cached.UserID)
		if err == nil {
			cached.Author = author
			return &cached, nil
		}
		uc.logger.Warn("Failed to load author of cached listing %s: %v", postID, err)
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	snapshot := *post
	snapshot.Author = entity.Author{}
	_ = uc.posts.Set(ctx, postID, &snapshot)
	return post, nil
}

func (uc *postUseCase) upload(key string, img ImageUpload) (string, error) {
	src, err := img.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	return uc.storage.UploadFile(key, src, img.ResolvedContentType())
}

// removeImages deletes stored objects best-effort.
func (uc *postUseCase) removeImages(images []entity.PostImage) {
	for _, img := range images {
		key := img.StorageKey
		if key == "" {
			key = uc.storage.KeyFromURL(img.ImageURL)
		}
		if key == "" {
			continue
		}
		if err := uc.storage.DeleteFile(key); err != nil {
			uc.logger.Warn("Failed to remove image %s: %v", key, err)
		}
	}
}

// announce tells the author's followers about a new listing.
func (uc *postUseCase) announce(postID, authorID string) {
	if uc.publisher == nil {
		return
	}

	go func() {
		ctx := context.Background()
		followers, err := uc.postRepo.FollowerIDs(ctx, authorID)
		if err != nil {
			uc.logger.Error("[NOTIFICATION QUEUE] Failed to load followers of %s: %v", authorID, err)
			return
		}
		for _, followerID := range followers {
			event := queue.Event{
				Type:     queue.EventNewPost,
				UserID:   followerID,
				ActorID:  authorID,
				PostID:   postID,
				Priority: newPostPriority,
			}
			if err := uc.publisher.PublishActivity(ctx, event); err != nil {
				uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish new_post event: %v", err)
			}
		}
	}()
}

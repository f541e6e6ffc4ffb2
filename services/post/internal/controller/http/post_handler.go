package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// ListingRequest is shared by create and edit.
type ListingRequest struct {
	Brand           string `json:"brand" form:"brand"`
	GarmentType     string `json:"garment_type" form:"garment_type"`
	Color           string `json:"color" form:"color"`
	SizeFit         string `json:"size_fit" form:"size_fit"`
	BrandSocialLink string `json:"brand_social_link" form:"brand_social_link"`
	BrandWebsite    string `json:"brand_website" form:"brand_website"`
	Description     string `json:"description" form:"description"`
}

func (r ListingRequest) input() usecase.ListingInput {
	return usecase.ListingInput{
		Brand:           r.Brand,
		GarmentType:     r.GarmentType,
		Color:           r.Color,
		SizeFit:         r.SizeFit,
		BrandSocialLink: r.BrandSocialLink,
		BrandWebsite:    r.BrandWebsite,
		Description:     r.Description,
	}
}

// CreatePost godoc
// @Summary      Create a listing
// @Description  Create a listing with 1 to 5 images. Brand, garment type and color are required.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        brand formData string true "Brand"
// @Param        garment_type formData string true "Garment type"
// @Param        color formData string true "Color"
// @Param        size_fit formData string false "Size and fit"
// @Param        brand_social_link formData string false "Brand social link"
// @Param        brand_website formData string false "Brand website"
// @Param        description formData string false "Description"
// @Param        images formData file true "Image files (jpg/jpeg/png/gif/webp), up to 5"
// @Success      201  {object}  entity.FeedItem
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req ListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File["images"]
		if len(files) == 0 {
			files = form.File["images[]"]
		}
	}

	item, err := h.postUseCase.CreatePost(c.Request.Context(), userID, req.input(), imageUploads(files))
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	if middleware.WantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/posts/"+item.ID)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetPost godoc
// @Summary      Get a listing
// @Description  One listing with its author, ordered images, counts and the viewer's flags
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.FeedItem
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := listingID(c)
	if !ok {
		return
	}
	viewerID, _ := middleware.CurrentUserID(c)

	item, err := h.postUseCase.GetPost(c.Request.Context(), postID, viewerID)
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdatePost godoc
// @Summary      Edit a listing
// @Description  Owner only. Links without a scheme get https:// and blank links are cleared.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body ListingRequest true "Listing fields"
// @Success      200  {object}  entity.FeedItem
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	postID, ok := listingID(c)
	if !ok {
		return
	}

	var req ListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.postUseCase.UpdatePost(c.Request.Context(), postID, userID, req.input())
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeletePost godoc
// @Summary      Delete a listing
// @Description  Owner only. Removes the listing, its images, likes and saves.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	postID, ok := listingID(c)
	if !ok {
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), postID, userID); err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// imageUploads wraps the multipart headers so nothing is opened until the
// listing has been validated.
func imageUploads(files []*multipart.FileHeader) []usecase.ImageUpload {
	uploads := make([]usecase.ImageUpload, 0, len(files))
	for _, file := range files {
		file := file
		uploads = append(uploads, usecase.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return file.Open()
			},
		})
	}
	return uploads
}

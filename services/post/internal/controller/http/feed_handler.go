package http

import (
	"net/http"
	"strconv"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/services/post/internal/entity"
	"unvaultd/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// Feed godoc
// @Summary      Global feed
// @Description  Every listing, newest first. Anonymous viewers get all flags false.
// @Tags         feed
// @Produce      json
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        offset query int false "Offset"
// @Success      200  {object}  entity.FeedPage
// @Failure      500  {object}  map[string]string
// @Router       /feed [get]
func (h *FeedHandler) Feed(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)

	page, err := h.feedUseCase.GlobalFeed(c.Request.Context(), viewerID, pageFrom(c))
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// UserPosts godoc
// @Summary      A member's listings
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Param        offset query int false "Offset"
// @Success      200  {object}  entity.FeedPage
// @Router       /users/{id}/posts [get]
func (h *FeedHandler) UserPosts(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)

	page, err := h.feedUseCase.ProfileFeed(c.Request.Context(), viewerID, c.Param("id"), pageFrom(c))
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// MyLikes godoc
// @Summary      Liked listings
// @Description  The signed-in member's Likes tab, most recently liked first
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.FeedPage
// @Router       /me/likes [get]
func (h *FeedHandler) MyLikes(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)
	h.likes(c, viewerID, viewerID)
}

// MySaves godoc
// @Summary      Saved listings
// @Description  The signed-in member's Saves tab, most recently saved first
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.FeedPage
// @Router       /me/saves [get]
func (h *FeedHandler) MySaves(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)
	h.saves(c, viewerID, viewerID)
}

// UserLikes godoc
// @Summary      A member's Likes tab
// @Description  Visible only to the member themselves
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.FeedPage
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/likes [get]
func (h *FeedHandler) UserLikes(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)
	h.likes(c, viewerID, c.Param("id"))
}

// UserSaves godoc
// @Summary      A member's Saves tab
// @Description  Visible only to the member themselves
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.FeedPage
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/saves [get]
func (h *FeedHandler) UserSaves(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)
	h.saves(c, viewerID, c.Param("id"))
}

func (h *FeedHandler) likes(c *gin.Context, viewerID, ownerID string) {
	page, err := h.feedUseCase.LikedPosts(c.Request.Context(), viewerID, ownerID, pageFrom(c))
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *FeedHandler) saves(c *gin.Context, viewerID, ownerID string) {
	page, err := h.feedUseCase.SavedPosts(c.Request.Context(), viewerID, ownerID, pageFrom(c))
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// pageFrom reads limit and offset, ignoring values that do not parse.
func pageFrom(c *gin.Context) entity.Page {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return entity.NewPage(limit, offset)
}

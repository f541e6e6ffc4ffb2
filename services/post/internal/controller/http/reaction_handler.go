package http

import (
	"net/http"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionUseCase usecase.ReactionUseCase
	logger          *logger.Logger
}

func NewReactionHandler(reactionUseCase usecase.ReactionUseCase, logger *logger.Logger) *ReactionHandler {
	return &ReactionHandler{
		reactionUseCase: reactionUseCase,
		logger:          logger,
	}
}

// ToggleLike godoc
// @Summary      Like or unlike a listing
// @Description  Flips the like and returns the stored state with the fresh count
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.LikeResult
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *ReactionHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	postID, ok := listingID(c)
	if !ok {
		return
	}

	result, err := h.reactionUseCase.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ToggleSave godoc
// @Summary      Save or unsave a listing
// @Description  Flips the save and returns the stored state with the fresh count
// @Tags         reactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.SaveResult
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/save [post]
func (h *ReactionHandler) ToggleSave(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	postID, ok := listingID(c)
	if !ok {
		return
	}

	result, err := h.reactionUseCase.ToggleSave(c.Request.Context(), userID, postID)
	if err != nil {
		writeListingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

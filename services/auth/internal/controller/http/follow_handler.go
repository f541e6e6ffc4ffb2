package http

import (
	"errors"
	"net/http"

	"unvaultd/pkg/middleware"
	"unvaultd/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followUseCase usecase.FollowUseCase
}

func NewFollowHandler(followUseCase usecase.FollowUseCase) *FollowHandler {
	return &FollowHandler{followUseCase: followUseCase}
}

// ToggleFollow godoc
// @Summary      Follow or unfollow a member
// @Description  Flips the follow edge and returns the state read back afterwards
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID to follow"
// @Success      200  {object}  entity.FollowResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id}/follow [post]
func (h *FollowHandler) ToggleFollow(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.followUseCase.ToggleFollow(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Followers godoc
// @Summary      List followers
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  entity.FollowList
// @Failure      500  {object}  map[string]string
// @Router       /users/{id}/followers [get]
func (h *FollowHandler) Followers(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)

	list, err := h.followUseCase.Followers(c.Request.Context(), viewerID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch followers"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// Following godoc
// @Summary      List followed members
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  entity.FollowList
// @Failure      500  {object}  map[string]string
// @Router       /users/{id}/following [get]
func (h *FollowHandler) Following(c *gin.Context) {
	viewerID, _ := middleware.CurrentUserID(c)

	list, err := h.followUseCase.Following(c.Request.Context(), viewerID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch following"})
		return
	}

	c.JSON(http.StatusOK, list)
}

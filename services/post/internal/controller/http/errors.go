package http

import (
	"errors"
	"net/http"

	"unvaultd/pkg/logger"
	"unvaultd/pkg/middleware"
	"unvaultd/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var validationErrors = []error{
	usecase.ErrNoImages,
	usecase.ErrTooManyImages,
	usecase.ErrMissingFields,
	usecase.ErrFieldTooLong,
	usecase.ErrInvalidImage,
}

func writeListingError(c *gin.Context, log *logger.Logger, err error) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, usecase.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	case errors.Is(err, usecase.ErrNotOwner), errors.Is(err, usecase.ErrPrivateTab):
		// Browsers are bounced home instead of seeing a bare 403.
		if middleware.WantsHTML(c) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Error("Listing request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}

// listingID reads the :id path segment. Anything that is not a UUID cannot
// name a listing, so it is answered with 404 before reaching the database.
func listingID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return "", false
	}
	return id, true
}

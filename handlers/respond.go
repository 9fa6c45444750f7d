package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atyraumap/moderation"
)

// moderationError maps workflow errors onto non-blocking HTTP responses.
// Nothing here ever takes the map down: failures degrade to "nothing
// happened, try again".
func moderationError(c *gin.Context, err error) {
	var fieldErr *moderation.FieldError
	switch {
	case errors.As(err, &fieldErr):
		// the client refocuses the offending field, no write happened
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fieldErr.Error(), "field": fieldErr.Field})
	case errors.Is(err, moderation.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, moderation.ErrConfirmationRequired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, moderation.ErrPhotoRequired),
		errors.Is(err, moderation.ErrPhotosForbidden),
		errors.Is(err, moderation.ErrUnknownCategory),
		errors.Is(err, moderation.ErrPointNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "write failed, try again"})
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"testseries-service/internal/service"
)

// respondError maps service sentinels onto HTTP statuses. Anything
// unrecognized is a 500; repository errors arrive here untranslated.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTestNotFound),
		errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrResultNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAttemptInProgress),
		errors.Is(err, service.ErrResultExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAttemptNotInProgress),
		errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrInvalidQuestion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTestNotPublished),
		errors.Is(err, service.ErrNotAttemptOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// userID reads the caller identity the gateway injects. Returns false after
// writing the response when the header is missing.
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-Id")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
		return "", false
	}
	return id, true
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openmaf/maf/pkg/models"
)

// respondError maps runtime errors to HTTP responses. Structured errors
// surface their fields so clients never parse message text.
func respondError(c *gin.Context, err error) {
	var illegal *models.IllegalTransitionError
	var leaseConflict *models.LeaseConflictError
	var fileLeased *models.FileLeasedError

	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnknownChannel):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrReadOnly):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "read_only": true})
	case errors.Is(err, models.ErrExpired), errors.Is(err, models.ErrNotHeldByAgent):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &illegal):
		c.JSON(http.StatusConflict, gin.H{
			"error":    illegal.Error(),
			"task_id":  illegal.TaskID,
			"from":     illegal.From,
			"to":       illegal.To,
			"observed": illegal.Observed,
		})
	case errors.As(err, &leaseConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":      leaseConflict.Error(),
			"task_id":    leaseConflict.TaskID,
			"holder":     leaseConflict.Holder,
			"expires_at": leaseConflict.ExpiresAt,
		})
	case errors.As(err, &fileLeased):
		c.JSON(http.StatusConflict, gin.H{
			"error":      fileLeased.Error(),
			"path":       fileLeased.Path,
			"holder":     fileLeased.Holder,
			"expires_at": fileLeased.ExpiresAt,
		})
	default:
		slog.Error("Unexpected runtime error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

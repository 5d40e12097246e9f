package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tunerec/internal/services"
)

// ErrorResponse is the wire shape of every error returned by the API.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Timestamp  string `json:"timestamp"`
}

// respondError maps a service error to its HTTP response. Classified errors
// carry their own code and status; anything else becomes a generic 500
// without leaking internal detail.
func respondError(c *gin.Context, err error) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, ErrorResponse{
			Error:      appErr.Code,
			Message:    appErr.Message,
			StatusCode: appErr.Status,
			Timestamp:  time.Now().Format(time.RFC3339),
		})
		return
	}

	slog.Error("Unhandled error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:      services.CodeInternal,
		Message:    "an internal server error occurred",
		StatusCode: http.StatusInternalServerError,
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}

package util

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rumdien113/tiktok-api/internal/apperr"
)

// ErrorBody is the uniform error envelope. Success responses return the raw
// entity row (or array) directly.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, status int, code apperr.Code, message string) {
	c.JSON(status, ErrorBody{Code: string(code), Message: message})
}

// FromError translates a service error into an HTTP response. Internal
// failures log the wrapped cause but never echo it to the client.
func FromError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal("unexpected error", err)
	}

	if appErr.Code == apperr.CodeInternal {
		Sugar.Errorw("request failed",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", appErr.Error(),
		)
		Error(c, status, appErr.Code, "internal server error")
		return
	}

	Error(c, status, appErr.Code, appErr.Message)
}

// Message writes a {message} body, used by delete/status endpoints.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

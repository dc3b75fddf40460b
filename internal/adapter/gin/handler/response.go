package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "cinewise-api/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

var errorCodes = map[int]string{
	http.StatusBadRequest:          "invalid_input",
	http.StatusUnauthorized:        "invalid_credentials",
	http.StatusNotFound:            "not_found",
	http.StatusBadGateway:          "upstream_error",
	http.StatusInternalServerError: "internal_error",
}

// handleError converts usecase errors to appropriate HTTP responses. Errors
// that carry an HTTP status map directly; anything else is an opaque 500.
func handleError(c *gin.Context, log *zap.Logger, err error) {
	var statuser apperrors.HTTPStatuser
	if errors.As(err, &statuser) {
		status := statuser.HTTPStatus()
		code, ok := errorCodes[status]
		if !ok {
			code = "error"
		}
		c.JSON(status, ErrorResponse{
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	log.Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

package handler

import (
	"errors"
	"log"

	"chaugames/backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// respondError translates a classified application error into the HTTP
// response for its kind. Unclassified errors are logged and surfaced with a
// generic message so internals never leak to the client.
func respondError(c *gin.Context, err error) {
	message := "Internal server error"

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		// apperr messages are written to be caller-safe.
		message = appErr.Error()
		if appErr.Err != nil {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
		}
	} else {
		log.Printf("unclassified error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(apperr.HTTPStatus(err), gin.H{"error": message})
}

package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/types"
)

// writeError maps domain errors onto HTTP statuses. Anything outside the
// known set is treated as internal and logged with its real cause; the
// client only sees a generic message.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, types.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, types.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrDuplicateUsername), errors.Is(err, types.ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, types.ErrInvalidOperation):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrUpstreamTimeout), errors.Is(err, types.ErrUpstream):
		status = http.StatusInternalServerError
	default:
		log.Printf("internal error: %v", err)
		message = "Internal server error"
	}

	c.JSON(status, types.DataResponse{
		Status:  false,
		Message: message,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, types.DataResponse{
		Status:  false,
		Message: message,
	})
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   data,
	})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, types.DataResponse{
		Status: true,
		Data:   data,
	})
}

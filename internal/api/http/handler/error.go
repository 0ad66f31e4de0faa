package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techhive/userdir/internal/model"
)

// respondError maps core store errors onto the HTTP contract. Anything
// unrecognized is reported as an opaque 500; details stay server-side via
// the gin error list picked up by the request logger.
func respondError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Reason})
	case errors.Is(err, model.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A user with this email already exists."})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found."})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error."})
	}
}

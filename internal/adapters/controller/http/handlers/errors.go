package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errorz.ErrUnauthorized):
		response.Forbidden(c, errorz.ErrUnauthorized.Error())
	case errors.Is(err, errorz.ErrNotFound):
		response.NotFound(c, errorz.ErrNotFound.Error())
	case errors.Is(err, errorz.ErrInvalidCode), errors.Is(err, errorz.ErrCodeExpired):
		response.Unauthorized(c, err.Error())
	default:
		response.Internal(c, "internal error")
	}
}

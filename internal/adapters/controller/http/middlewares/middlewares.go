package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

const (
	// ContextUserID is the key for the caller's user id in gin context.
	ContextUserID = "user_id"
	// ContextUserEmail is the key for the caller's email in gin context.
	ContextUserEmail = "user_email"
)

type tokenValidator interface {
	ValidateToken(token string) (*service.Claims, error)
}

// Auth validates the bearer token and threads the caller identity into
// the request context. Protected routes never reach their service call
// without an authenticated email.
func Auth(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}
		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/middlewares"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

type editUserRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type UserHandler struct {
	userService *service.UserService
	log         *types.Logger
}

func NewUserHandler(userService *service.UserService, log *types.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.MustGet(middlewares.ContextUserID).(string)

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, profile)
}

// Edit handles PATCH /users/me.
func (h *UserHandler) Edit(c *gin.Context) {
	userID := c.MustGet(middlewares.ContextUserID).(string)

	var req editUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.userService.Update(c.Request.Context(), userID, req.Name, req.Image); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

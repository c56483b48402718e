package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/internal/domain/utils/validator"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

type sendCodeRequest struct {
	Email string `json:"email" binding:"required"`
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type AuthHandler struct {
	authService *service.AuthService
	log         *types.Logger
}

func NewAuthHandler(authService *service.AuthService, log *types.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// SendCode handles POST /auth/code.
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !validator.Email(req.Email) {
		response.BadRequest(c, "invalid email")
		return
	}

	if err := h.authService.SendCode(c.Request.Context(), req.Email); err != nil {
		h.log.Errorf("send login code: %v", err)
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"sent": true})
}

// Verify handles POST /auth/verify.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	token, user, err := h.authService.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": user})
}

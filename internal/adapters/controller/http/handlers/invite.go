package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/middlewares"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/internal/domain/utils/validator"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

type ownerInviteRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	ClubName string `json:"clubName" binding:"required"`
}

type collaboratorInviteRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	ClubID string `json:"clubId" binding:"required"`
}

type InviteHandler struct {
	ownerInvites        *service.OwnerInviteService
	collaboratorInvites *service.CollaboratorInviteService
	log                 *types.Logger
}

func NewInviteHandler(ownerInvites *service.OwnerInviteService, collaboratorInvites *service.CollaboratorInviteService, log *types.Logger) *InviteHandler {
	return &InviteHandler{
		ownerInvites:        ownerInvites,
		collaboratorInvites: collaboratorInvites,
		log:                 log,
	}
}

// SendOwner handles POST /invites/owner.
func (h *InviteHandler) SendOwner(c *gin.Context) {
	var req ownerInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !validator.Email(req.Email) {
		response.BadRequest(c, "invalid email")
		return
	}

	invite, err := h.ownerInvites.Send(c.Request.Context(), req.Name, req.Email, req.ClubName)
	if err != nil {
		h.log.Errorf("send owner invite to %s: %v", req.Email, err)
		respondError(c, err)
		return
	}
	response.Created(c, invite)
}

// SendCollaborator handles POST /invites/collaborator.
func (h *InviteHandler) SendCollaborator(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	var req collaboratorInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !validator.Email(req.Email) {
		response.BadRequest(c, "invalid email")
		return
	}

	invite, err := h.collaboratorInvites.Send(c.Request.Context(), req.Name, req.Email, req.ClubID, email)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, invite)
}

package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/middlewares"
	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/internal/domain/utils/validator"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

type editClubRequest struct {
	Name        *string `json:"name"`
	Campus      *string `json:"campus"`
	Description *string `json:"description"`
}

type ClubHandler struct {
	clubService *service.ClubService
	userService *service.UserService
	log         *types.Logger
}

func NewClubHandler(clubService *service.ClubService, userService *service.UserService, log *types.Logger) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
		userService: userService,
		log:         log,
	}
}

// GetAll handles GET /clubs.
func (h *ClubHandler) GetAll(c *gin.Context) {
	clubs, err := h.clubService.GetAll(c.Request.Context())
	if err != nil {
		h.log.Errorf("list clubs: %v", err)
		respondError(c, err)
		return
	}
	response.OK(c, clubs)
}

// Get handles GET /clubs/:id.
func (h *ClubHandler) Get(c *gin.Context) {
	club, err := h.clubService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, club)
}

// Create handles POST /clubs (multipart form with a profile image).
func (h *ClubHandler) Create(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	name := c.PostForm("name")
	campus := entity.Campus(c.PostForm("campus"))
	description := c.PostForm("description")

	if !validator.ClubName(name) {
		response.BadRequest(c, "invalid club name")
		return
	}
	if !validator.Campus(campus) {
		response.BadRequest(c, "unknown campus")
		return
	}
	if !validator.ClubDescription(description) {
		response.BadRequest(c, "empty description")
		return
	}

	input := dto.ClubCreate{
		Name:        name,
		Campus:      campus,
		Description: description,
	}

	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			response.BadRequest(c, "unreadable profile image")
			return
		}
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			response.BadRequest(c, "unreadable profile image")
			return
		}
		input.ProfileImage = data
		input.ImageName = fileHeader.Filename
		input.ContentType = fileHeader.Header.Get("Content-Type")
	}

	club, err := h.clubService.Create(c.Request.Context(), input, email)
	if err != nil {
		h.log.Errorf("create club for %s: %v", email, err)
		respondError(c, err)
		return
	}
	response.Created(c, club)
}

// Edit handles PATCH /clubs/:id.
func (h *ClubHandler) Edit(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	var req editClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	update := dto.ClubUpdate{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Campus != nil {
		campus := entity.Campus(*req.Campus)
		if !validator.Campus(campus) {
			response.BadRequest(c, "unknown campus")
			return
		}
		update.Campus = &campus
	}
	if req.Name != nil && !validator.ClubName(*req.Name) {
		response.BadRequest(c, "invalid club name")
		return
	}

	if err := h.clubService.Edit(c.Request.Context(), c.Param("id"), update, email); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// Owners handles GET /clubs/:id/owners.
func (h *ClubHandler) Owners(c *gin.Context) {
	owners, err := h.clubService.GetOwners(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, owners)
}

// Collaborators handles GET /clubs/:id/collaborators.
func (h *ClubHandler) Collaborators(c *gin.Context) {
	collaborators, err := h.clubService.GetCollaborators(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, collaborators)
}

// ActiveEvents handles GET /clubs/:id/events/active.
func (h *ClubHandler) ActiveEvents(c *gin.Context) {
	events, err := h.clubService.GetActiveEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, events)
}

// InactiveEvents handles GET /clubs/:id/events/inactive.
func (h *ClubHandler) InactiveEvents(c *gin.Context) {
	events, err := h.clubService.GetInActiveEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, events)
}

// Join handles POST /clubs/:id/join, redeeming a collaborator invite.
func (h *ClubHandler) Join(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	if err := h.userService.JoinClub(c.Request.Context(), c.Param("id"), email); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"joined": true})
}

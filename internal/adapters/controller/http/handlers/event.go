package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uoftclubs/clubs-backend/internal/adapters/controller/http/middlewares"
	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/service"
	"github.com/uoftclubs/clubs-backend/internal/domain/utils/validator"
	"github.com/uoftclubs/clubs-backend/pkg/logger/types"
	"github.com/uoftclubs/clubs-backend/pkg/response"
)

type createEventRequest struct {
	ClubID      string    `json:"clubId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
}

type editEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Venue       *string    `json:"venue"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
}

type EventHandler struct {
	eventService *service.EventService
	baseURL      string
	log          *types.Logger
}

func NewEventHandler(eventService *service.EventService, baseURL string, log *types.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		baseURL:      baseURL,
		log:          log,
	}
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, event)
}

// Create handles POST /events.
func (h *EventHandler) Create(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if !validator.EventName(req.Name) || !validator.EventVenue(req.Venue) {
		response.BadRequest(c, "invalid event fields")
		return
	}
	if !validator.EventTimes(req.StartTime, req.EndTime) {
		response.BadRequest(c, "start time must precede end time")
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), dto.EventCreate{
		ClubID:      req.ClubID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Venue:       req.Venue,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, email)
	if err != nil {
		h.log.Errorf("create event for %s: %v", email, err)
		respondError(c, err)
		return
	}
	response.Created(c, gin.H{"eventId": event.ID})
}

// Edit handles PATCH /events/:id.
func (h *EventHandler) Edit(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	var req editEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.StartTime != nil && req.EndTime != nil && !validator.EventTimes(*req.StartTime, *req.EndTime) {
		response.BadRequest(c, "start time must precede end time")
		return
	}

	err := h.eventService.Edit(c.Request.Context(), c.Param("id"), dto.EventUpdate{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Venue:       req.Venue,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, email)
	if err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// Delete handles DELETE /events/:id.
func (h *EventHandler) Delete(c *gin.Context) {
	email := c.MustGet(middlewares.ContextUserEmail).(string)

	if err := h.eventService.Delete(c.Request.Context(), c.Param("id"), email); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deletedId": c.Param("id")})
}

// Highlights handles GET /events/highlights.
func (h *EventHandler) Highlights(c *gin.Context) {
	events, err := h.eventService.GetHighlights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, events)
}

// ByDay handles GET /events/day?date=2006-01-02.
func (h *EventHandler) ByDay(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		response.BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	event, err := h.eventService.GetByDay(c.Request.Context(), date)
	if err != nil {
		// Absent days are a normal empty result, not an error.
		if errors.Is(err, errorz.ErrNotFound) {
			response.OK(c, nil)
			return
		}
		respondError(c, err)
		return
	}
	response.OK(c, event)
}

// QR handles GET /events/:id/qr, returning a PNG.
func (h *EventHandler) QR(c *gin.Context) {
	png, err := h.eventService.ShareQR(c.Request.Context(), c.Param("id"), h.baseURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"github.com/uoftclubs/clubs-backend/pkg/qrcode"
	"gorm.io/gorm"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	GetUpcomingByClub(ctx context.Context, clubID string, after time.Time) ([]entity.Event, error)
	GetPastByClub(ctx context.Context, clubID string, before time.Time) ([]entity.Event, error)
	GetStartingBetween(ctx context.Context, from, to time.Time) ([]entity.Event, error)
	GetFirstStartingBetween(ctx context.Context, from, to time.Time) (*entity.Event, error)
	Count(ctx context.Context) (int64, error)
}

const highlightsWindow = 7 * 24 * time.Hour

type EventService struct {
	storage EventStorage
	access  accessChecker
}

func NewEventService(storage EventStorage, access accessChecker) *EventService {
	return &EventService{
		storage: storage,
		access:  access,
	}
}

func (s *EventService) Create(ctx context.Context, input dto.EventCreate, requesterEmail string) (*entity.Event, error) {
	hasAccess, err := s.access.HasAccess(ctx, requesterEmail, input.ClubID)
	if err != nil {
		return nil, err
	}
	if !hasAccess {
		return nil, errorz.ErrUnauthorized
	}

	return s.storage.Create(ctx, &entity.Event{
		ClubID:      input.ClubID,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Venue:       input.Venue,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	})
}

// Edit authorizes against the event's owning club, then applies a
// partial update.
func (s *EventService) Edit(ctx context.Context, eventID string, update dto.EventUpdate, requesterEmail string) error {
	event, err := s.resolve(ctx, eventID)
	if err != nil {
		return err
	}

	hasAccess, err := s.access.HasAccess(ctx, requesterEmail, event.ClubID)
	if err != nil {
		return err
	}
	if !hasAccess {
		return errorz.ErrUnauthorized
	}

	return s.storage.UpdateFields(ctx, eventID, update.Fields())
}

// Delete authorizes against the event's owning club, then removes it.
func (s *EventService) Delete(ctx context.Context, eventID, requesterEmail string) error {
	event, err := s.resolve(ctx, eventID)
	if err != nil {
		return err
	}

	hasAccess, err := s.access.HasAccess(ctx, requesterEmail, event.ClubID)
	if err != nil {
		return err
	}
	if !hasAccess {
		return errorz.ErrUnauthorized
	}

	return s.storage.Delete(ctx, eventID)
}

func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	return s.resolve(ctx, id)
}

// GetHighlights returns events starting within the next seven days,
// soonest first.
func (s *EventService) GetHighlights(ctx context.Context) ([]entity.Event, error) {
	now := time.Now()
	return s.storage.GetStartingBetween(ctx, now, now.Add(highlightsWindow))
}

// GetByDay returns the first event starting on the target date's local
// calendar day. Both midnight and 23:59:59.999 are inside the window.
func (s *EventService) GetByDay(ctx context.Context, targetDate time.Time) (*entity.Event, error) {
	year, month, day := targetDate.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, targetDate.Location())
	endOfDay := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), targetDate.Location())

	event, err := s.storage.GetFirstStartingBetween(ctx, startOfDay, endOfDay)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return event, err
}

// ShareQR renders a QR code PNG pointing at the event's public page.
func (s *EventService) ShareQR(ctx context.Context, eventID, baseURL string) ([]byte, error) {
	event, err := s.resolve(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return qrcode.GeneratePNG(fmt.Sprintf("%s/events/%s", baseURL, event.ID))
}

func (s *EventService) resolve(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.storage.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return event, err
}

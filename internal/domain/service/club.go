package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"github.com/uoftclubs/clubs-backend/pkg/storage"
	"gorm.io/gorm"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Count(ctx context.Context) (int64, error)
}

type accessChecker interface {
	HasAccess(ctx context.Context, email, clubID string) (bool, error)
}

type uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type ClubService struct {
	storage             ClubStorage
	ownerInviteStorage  OwnerInviteStorage
	eventStorage        EventStorage
	ownerStorage        ClubOwnerStorage
	collaboratorStorage ClubCollaboratorStorage
	access              accessChecker
	uploader            uploader
}

func NewClubService(
	clubStorage ClubStorage,
	ownerInviteStorage OwnerInviteStorage,
	eventStorage EventStorage,
	ownerStorage ClubOwnerStorage,
	collaboratorStorage ClubCollaboratorStorage,
	access accessChecker,
	uploader uploader,
) *ClubService {
	return &ClubService{
		storage:             clubStorage,
		ownerInviteStorage:  ownerInviteStorage,
		eventStorage:        eventStorage,
		ownerStorage:        ownerStorage,
		collaboratorStorage: collaboratorStorage,
		access:              access,
		uploader:            uploader,
	}
}

// Create inserts a new club for an invited creator. The creator must
// hold at least one owner invite for their email; the invite stays in
// place after creation.
func (s *ClubService) Create(ctx context.Context, input dto.ClubCreate, creatorEmail string) (*entity.Club, error) {
	invites, err := s.ownerInviteStorage.GetByEmail(ctx, creatorEmail)
	if err != nil {
		return nil, err
	}
	if len(invites) == 0 {
		return nil, errorz.ErrUnauthorized
	}

	var imageKey string
	if len(input.ProfileImage) > 0 {
		key := storage.ImageKey("clubs", input.ImageName)
		imageKey, err = s.uploader.Upload(ctx, key, input.ContentType, bytes.NewReader(input.ProfileImage))
		if err != nil {
			return nil, fmt.Errorf("upload club profile image: %w", err)
		}
	}

	return s.storage.Create(ctx, &entity.Club{
		Name:         input.Name,
		ProfileImage: imageKey,
		Campus:       input.Campus,
		Description:  input.Description,
	})
}

// Edit applies a partial update; fields the caller did not supply keep
// their stored values.
func (s *ClubService) Edit(ctx context.Context, clubID string, update dto.ClubUpdate, requesterEmail string) error {
	hasAccess, err := s.access.HasAccess(ctx, requesterEmail, clubID)
	if err != nil {
		return err
	}
	if !hasAccess {
		return errorz.ErrUnauthorized
	}

	return s.storage.UpdateFields(ctx, clubID, update.Fields())
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return club, err
}

func (s *ClubService) GetAll(ctx context.Context) ([]entity.Club, error) {
	return s.storage.GetAll(ctx)
}

func (s *ClubService) GetOwners(ctx context.Context, clubID string) ([]dto.ClubMember, error) {
	return s.ownerStorage.GetByClubID(ctx, clubID)
}

func (s *ClubService) GetCollaborators(ctx context.Context, clubID string) ([]dto.ClubMember, error) {
	return s.collaboratorStorage.GetByClubID(ctx, clubID)
}

// GetActiveEvents returns the club's events that have not started yet,
// soonest first.
func (s *ClubService) GetActiveEvents(ctx context.Context, clubID string) ([]entity.Event, error) {
	return s.eventStorage.GetUpcomingByClub(ctx, clubID, time.Now())
}

// GetInActiveEvents returns the club's events that already started,
// most recent first.
func (s *ClubService) GetInActiveEvents(ctx context.Context, clubID string) ([]entity.Event, error) {
	return s.eventStorage.GetPastByClub(ctx, clubID, time.Now())
}

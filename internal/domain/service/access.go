package service

import (
	"context"
	"errors"

	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubOwnerStorage interface {
	Create(ctx context.Context, clubOwner *entity.ClubOwner) (*entity.ClubOwner, error)
	Delete(ctx context.Context, userID, clubID string) error
	Exists(ctx context.Context, userID, clubID string) (bool, error)
	GetByClubID(ctx context.Context, clubID string) ([]dto.ClubMember, error)
	GetClubIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

type ClubCollaboratorStorage interface {
	Create(ctx context.Context, collaborator *entity.ClubCollaborator) (*entity.ClubCollaborator, error)
	Delete(ctx context.Context, userID, clubID string) error
	Exists(ctx context.Context, userID, clubID string) (bool, error)
	RedeemInvite(ctx context.Context, collaborator *entity.ClubCollaborator, inviteID string) error
	GetByClubID(ctx context.Context, clubID string) ([]dto.ClubMember, error)
	GetClubIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

// AccessService decides whether a user may administer a club. A user
// has access iff they own the club or collaborate on it. A missing
// user, a missing club, or an empty email is an ordinary denial, never
// an error.
type AccessService struct {
	userStorage         UserStorage
	ownerStorage        ClubOwnerStorage
	collaboratorStorage ClubCollaboratorStorage
}

func NewAccessService(userStorage UserStorage, ownerStorage ClubOwnerStorage, collaboratorStorage ClubCollaboratorStorage) *AccessService {
	return &AccessService{
		userStorage:         userStorage,
		ownerStorage:        ownerStorage,
		collaboratorStorage: collaboratorStorage,
	}
}

func (s *AccessService) HasAccess(ctx context.Context, email, clubID string) (bool, error) {
	if email == "" || clubID == "" {
		return false, nil
	}

	user, err := s.userStorage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	owns, err := s.ownerStorage.Exists(ctx, user.ID, clubID)
	if err != nil {
		return false, err
	}

	collaborates, err := s.collaboratorStorage.Exists(ctx, user.ID, clubID)
	if err != nil {
		return false, err
	}

	return owns || collaborates, nil
}

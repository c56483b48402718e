package service

import (
	"context"
	"errors"

	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

// Profile is a user together with the clubs they may administer.
type Profile struct {
	User                entity.User `json:"user"`
	OwnedClubIDs        []string    `json:"ownedClubIds"`
	CollaboratedClubIDs []string    `json:"collaboratedClubIds"`
}

type UserService struct {
	userStorage         UserStorage
	ownerStorage        ClubOwnerStorage
	collaboratorStorage ClubCollaboratorStorage
	inviteStorage       CollaboratorInviteStorage
}

func NewUserService(
	userStorage UserStorage,
	ownerStorage ClubOwnerStorage,
	collaboratorStorage ClubCollaboratorStorage,
	inviteStorage CollaboratorInviteStorage,
) *UserService {
	return &UserService{
		userStorage:         userStorage,
		ownerStorage:        ownerStorage,
		collaboratorStorage: collaboratorStorage,
		inviteStorage:       inviteStorage,
	}
}

// JoinClub redeems a collaborator invite for the requester. The
// membership insert and the invite delete commit together or not at
// all; a second redemption of the same invite fails.
func (s *UserService) JoinClub(ctx context.Context, clubID, requesterEmail string) error {
	invites, err := s.inviteStorage.GetByEmailAndClub(ctx, requesterEmail, clubID)
	if err != nil {
		return err
	}
	if len(invites) == 0 {
		return errorz.ErrUnauthorized
	}

	user, err := s.userStorage.GetByEmail(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrUnauthorized
		}
		return err
	}

	// Only the first matching invite is consumed; stray duplicates stay.
	return s.collaboratorStorage.RedeemInvite(ctx, &entity.ClubCollaborator{
		UserID: user.ID,
		ClubID: clubID,
	}, invites[0].ID)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userStorage.Get(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return user, err
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userStorage.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.ErrNotFound
	}
	return user, err
}

// GetProfile returns the user with the ids of the clubs they own and
// collaborate on.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := s.ownerStorage.GetClubIDsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	collaborated, err := s.collaboratorStorage.GetClubIDsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:                *user,
		OwnedClubIDs:        owned,
		CollaboratedClubIDs: collaborated,
	}, nil
}

// Update edits the user's display name and avatar; nil fields stay as
// they are.
func (s *UserService) Update(ctx context.Context, userID string, name, image *string) error {
	fields := make(map[string]interface{})
	if name != nil {
		fields["name"] = *name
	}
	if image != nil {
		fields["image"] = *image
	}
	return s.userStorage.UpdateFields(ctx, userID, fields)
}

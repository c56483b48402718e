package service

import (
	"context"

	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
)

type CollaboratorInviteStorage interface {
	Create(ctx context.Context, invite *entity.CollaboratorInvite) (*entity.CollaboratorInvite, error)
	GetByEmailAndClub(ctx context.Context, email, clubID string) ([]entity.CollaboratorInvite, error)
	Delete(ctx context.Context, id string) error
}

type CollaboratorInviteService struct {
	storage     CollaboratorInviteStorage
	clubStorage ClubStorage
	access      accessChecker
	mail        mailClient
}

func NewCollaboratorInviteService(storage CollaboratorInviteStorage, clubStorage ClubStorage, access accessChecker, mail mailClient) *CollaboratorInviteService {
	return &CollaboratorInviteService{
		storage:     storage,
		clubStorage: clubStorage,
		access:      access,
		mail:        mail,
	}
}

// Send records a collaborator invite for the (email, club) pair and
// dispatches the invite mail. Only an owner or collaborator of the
// club may invite.
func (s *CollaboratorInviteService) Send(ctx context.Context, name, email, clubID, requesterEmail string) (*entity.CollaboratorInvite, error) {
	hasAccess, err := s.access.HasAccess(ctx, requesterEmail, clubID)
	if err != nil {
		return nil, err
	}
	if !hasAccess {
		return nil, errorz.ErrUnauthorized
	}

	invite, err := s.storage.Create(ctx, &entity.CollaboratorInvite{
		Name:   name,
		Email:  email,
		ClubID: clubID,
	})
	if err != nil {
		return nil, err
	}

	clubName := clubID
	if club, clubErr := s.clubStorage.Get(ctx, clubID); clubErr == nil {
		clubName = club.Name
	}
	s.mail.SendCollaboratorInvite(email, name, clubName)

	return invite, nil
}

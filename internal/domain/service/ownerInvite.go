package service

import (
	"context"

	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
)

type OwnerInviteStorage interface {
	Create(ctx context.Context, invite *entity.OwnerInvite) (*entity.OwnerInvite, error)
	GetByEmail(ctx context.Context, email string) ([]entity.OwnerInvite, error)
	Delete(ctx context.Context, id string) error
}

type mailClient interface {
	SendOwnerInvite(to string, name string, clubName string)
	SendCollaboratorInvite(to string, name string, clubName string)
}

type OwnerInviteService struct {
	storage OwnerInviteStorage
	mail    mailClient
}

func NewOwnerInviteService(storage OwnerInviteStorage, mail mailClient) *OwnerInviteService {
	return &OwnerInviteService{
		storage: storage,
		mail:    mail,
	}
}

// Send records an owner invite for the email and dispatches the invite
// mail. Any authenticated caller may send one; there is no admin gate
// on this operation.
func (s *OwnerInviteService) Send(ctx context.Context, name, email, clubName string) (*entity.OwnerInvite, error) {
	invite, err := s.storage.Create(ctx, &entity.OwnerInvite{
		Name:     name,
		Email:    email,
		ClubName: clubName,
	})
	if err != nil {
		return nil, err
	}

	s.mail.SendOwnerInvite(email, name, clubName)
	return invite, nil
}

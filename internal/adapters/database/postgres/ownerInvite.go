package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type OwnerInviteStorage struct {
	db *gorm.DB
}

func NewOwnerInviteStorage(db *gorm.DB) *OwnerInviteStorage {
	return &OwnerInviteStorage{
		db: db,
	}
}

func (s *OwnerInviteStorage) Create(ctx context.Context, invite *entity.OwnerInvite) (*entity.OwnerInvite, error) {
	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Create(&invite).Error
	return invite, err
}

func (s *OwnerInviteStorage) GetByEmail(ctx context.Context, email string) ([]entity.OwnerInvite, error) {
	var invites []entity.OwnerInvite
	err := s.db.WithContext(ctx).Where("email = ?", email).Find(&invites).Error
	return invites, err
}

func (s *OwnerInviteStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.OwnerInvite{}).Error
}

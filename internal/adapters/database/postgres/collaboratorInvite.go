package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type CollaboratorInviteStorage struct {
	db *gorm.DB
}

func NewCollaboratorInviteStorage(db *gorm.DB) *CollaboratorInviteStorage {
	return &CollaboratorInviteStorage{
		db: db,
	}
}

func (s *CollaboratorInviteStorage) Create(ctx context.Context, invite *entity.CollaboratorInvite) (*entity.CollaboratorInvite, error) {
	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Create(&invite).Error
	return invite, err
}

// GetByEmailAndClub returns pending invites for the (email, club) pair,
// oldest first.
func (s *CollaboratorInviteStorage) GetByEmailAndClub(ctx context.Context, email, clubID string) ([]entity.CollaboratorInvite, error) {
	var invites []entity.CollaboratorInvite
	err := s.db.WithContext(ctx).
		Where("email = ? AND club_id = ?", email, clubID).
		Order("created_at asc").
		Find(&invites).Error
	return invites, err
}

func (s *CollaboratorInviteStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.CollaboratorInvite{}).Error
}

func (s *CollaboratorInviteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.CollaboratorInvite{}).Count(&count).Error
	return count, err
}

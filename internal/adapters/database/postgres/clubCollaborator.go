package postgres

import (
	"context"

	"github.com/uoftclubs/clubs-backend/internal/domain/common/errorz"
	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubCollaboratorStorage struct {
	db *gorm.DB
}

func NewClubCollaboratorStorage(db *gorm.DB) *ClubCollaboratorStorage {
	return &ClubCollaboratorStorage{
		db: db,
	}
}

func (s *ClubCollaboratorStorage) Create(ctx context.Context, collaborator *entity.ClubCollaborator) (*entity.ClubCollaborator, error) {
	err := s.db.WithContext(ctx).Create(&collaborator).Error
	return collaborator, err
}

func (s *ClubCollaboratorStorage) Delete(ctx context.Context, userID, clubID string) error {
	return s.db.WithContext(ctx).Where("club_id = ? AND user_id = ?", clubID, userID).Delete(&entity.ClubCollaborator{}).Error
}

// Exists reports whether the (user, club) collaborator row is present.
func (s *ClubCollaboratorStorage) Exists(ctx context.Context, userID, clubID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.ClubCollaborator{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error
	return count > 0, err
}

// RedeemInvite creates the collaborator row and deletes the consumed
// invite inside one transaction. If the invite row is already gone the
// whole transaction rolls back, so a racing redemption of the same
// invite cannot leave a membership without consuming it.
func (s *ClubCollaboratorStorage) RedeemInvite(ctx context.Context, collaborator *entity.ClubCollaborator, inviteID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&collaborator).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", inviteID).Delete(&entity.CollaboratorInvite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errorz.ErrUnauthorized
		}
		return nil
	})
}

func (s *ClubCollaboratorStorage) GetByClubID(ctx context.Context, clubID string) ([]dto.ClubMember, error) {
	var result []dto.ClubMember
	err := s.db.WithContext(ctx).
		Table("club_collaborators").
		Select("club_collaborators.club_id, club_collaborators.user_id, users.name, users.email, users.image").
		Joins("LEFT JOIN users ON users.id = club_collaborators.user_id").
		Where("club_collaborators.club_id = ?", clubID).
		Scan(&result).Error
	return result, err
}

func (s *ClubCollaboratorStorage) GetClubIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&entity.ClubCollaborator{}).
		Where("user_id = ?", userID).
		Pluck("club_id", &ids).Error
	return ids, err
}

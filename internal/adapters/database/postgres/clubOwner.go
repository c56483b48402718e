package postgres

import (
	"context"

	"github.com/uoftclubs/clubs-backend/internal/domain/dto"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubOwnerStorage struct {
	db *gorm.DB
}

func NewClubOwnerStorage(db *gorm.DB) *ClubOwnerStorage {
	return &ClubOwnerStorage{
		db: db,
	}
}

func (s *ClubOwnerStorage) Create(ctx context.Context, clubOwner *entity.ClubOwner) (*entity.ClubOwner, error) {
	err := s.db.WithContext(ctx).Create(&clubOwner).Error
	return clubOwner, err
}

func (s *ClubOwnerStorage) Delete(ctx context.Context, userID, clubID string) error {
	return s.db.WithContext(ctx).Where("club_id = ? AND user_id = ?", clubID, userID).Delete(&entity.ClubOwner{}).Error
}

// Exists reports whether the (user, club) owner row is present.
func (s *ClubOwnerStorage) Exists(ctx context.Context, userID, clubID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.ClubOwner{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *ClubOwnerStorage) GetByClubID(ctx context.Context, clubID string) ([]dto.ClubMember, error) {
	var result []dto.ClubMember
	err := s.db.WithContext(ctx).
		Table("club_owners").
		Select("club_owners.club_id, club_owners.user_id, users.name, users.email, users.image").
		Joins("LEFT JOIN users ON users.id = club_owners.user_id").
		Where("club_owners.club_id = ?", clubID).
		Scan(&result).Error
	return result, err
}

func (s *ClubOwnerStorage) GetClubIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&entity.ClubOwner{}).
		Where("user_id = ?", userID).
		Pluck("club_id", &ids).Error
	return ids, err
}

package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, err
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Preload("Events").Where("id = ?", id).First(&club).Error
	return &club, err
}

func (s *ClubStorage) GetAll(ctx context.Context) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Preload("Events").Find(&clubs).Error
	return clubs, err
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, err
}

// UpdateFields updates only the given columns, leaving the rest of the
// row untouched.
func (s *ClubStorage) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&entity.Club{}).Where("id = ?", id).Updates(fields).Error
}

func (s *ClubStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Club{}).Count(&count).Error
	return count, err
}

func (s *ClubStorage) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Order(order).Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, err
}

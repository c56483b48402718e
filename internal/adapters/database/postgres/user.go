package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{
		db: db,
	}
}

func (s *UserStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Create(&user).Error
	return user, err
}

func (s *UserStorage) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return &user, err
}

func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

// Upsert inserts the user or, if a row with the same email already
// exists, refreshes its verification timestamp.
func (s *UserStorage) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"email_verified", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return s.GetByEmail(ctx, user.Email)
}

func (s *UserStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := s.db.WithContext(ctx).Save(&user).Error
	return user, err
}

func (s *UserStorage) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

func (s *UserStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

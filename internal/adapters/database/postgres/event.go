package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uoftclubs/clubs-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, err
}

func (s *EventStorage) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Find(&events).Error
	return events, err
}

func (s *EventStorage) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&entity.Event{}).Where("id = ?", id).Updates(fields).Error
}

func (s *EventStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Event{}).Error
}

// GetUpcomingByClub returns the club's events starting strictly after
// the given instant, soonest first.
func (s *EventStorage) GetUpcomingByClub(ctx context.Context, clubID string, after time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND start_time > ?", clubID, after).
		Order("start_time asc").
		Find(&events).Error
	return events, err
}

// GetPastByClub returns the club's events starting strictly before the
// given instant, most recent first.
func (s *EventStorage) GetPastByClub(ctx context.Context, clubID string, before time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND start_time < ?", clubID, before).
		Order("start_time desc").
		Find(&events).Error
	return events, err
}

// GetStartingBetween returns events with a start time in the inclusive
// [from, to] window, soonest first.
func (s *EventStorage) GetStartingBetween(ctx context.Context, from, to time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time asc").
		Find(&events).Error
	return events, err
}

// GetFirstStartingBetween returns the earliest event with a start time
// in the inclusive [from, to] window.
func (s *EventStorage) GetFirstStartingBetween(ctx context.Context, from, to time.Time) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time asc").
		First(&event).Error
	return &event, err
}

func (s *EventStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Event{}).Count(&count).Error
	return count, err
}

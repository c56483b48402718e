package entity

import "time"

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ClubID      string `gorm:"not null;type:uuid;index"`
	Name        string `gorm:"not null"`
	Description string
	Image       string
	Venue       string
	StartTime   time.Time `gorm:"not null;index"`
	EndTime     time.Time
}

// Active reports whether the event has not started yet at the given instant.
func (e *Event) Active(now time.Time) bool {
	return e.StartTime.After(now)
}

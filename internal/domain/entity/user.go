package entity

import "time"

type User struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	Email         string `gorm:"not null;uniqueIndex"`
	EmailVerified *time.Time
	Image         string
}

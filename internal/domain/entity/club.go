package entity

import "time"

type Campus string

const (
	CampusScarborough Campus = "scarborough"
	CampusStGeorge    Campus = "st george"
	CampusMississauga Campus = "mississauga"
)

// Valid reports whether the campus is one of the three known campuses.
func (c Campus) Valid() bool {
	switch c {
	case CampusScarborough, CampusStGeorge, CampusMississauga:
		return true
	}
	return false
}

type Club struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string `gorm:"not null"`
	ProfileImage string
	Campus       Campus `gorm:"type:varchar(32)"`
	Description  string
	Events       []Event `gorm:"foreignKey:ClubID"`
}

package entity

import "time"

// OwnerInvite lets the holder of an email create a club. The club does
// not exist yet, so the invite only carries its intended name.
type OwnerInvite struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	Name      string
	Email     string `gorm:"not null;index"`
	ClubName  string
}

// CollaboratorInvite lets the holder of an email join an existing club
// as a collaborator. Deleted on redemption.
type CollaboratorInvite struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	Name      string
	Email     string `gorm:"not null;index"`
	ClubID    string `gorm:"not null;type:uuid;index"`
}

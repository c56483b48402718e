package entity

import "time"

// ClubOwner links a user to a club with owner rights. The composite
// primary key keeps a (user, club) pair unique.
type ClubOwner struct {
	UserID    string `gorm:"primaryKey;type:uuid"`
	ClubID    string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
}

// ClubCollaborator links a user to a club with collaborator rights,
// established by redeeming a collaborator invite.
type ClubCollaborator struct {
	UserID    string `gorm:"primaryKey;type:uuid"`
	ClubID    string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
}

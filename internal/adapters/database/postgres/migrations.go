package postgres

import "github.com/uoftclubs/clubs-backend/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Club{},
	&entity.ClubOwner{},
	&entity.ClubCollaborator{},
	&entity.Event{},
	&entity.OwnerInvite{},
	&entity.CollaboratorInvite{},
}

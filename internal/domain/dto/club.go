package dto

import "github.com/uoftclubs/clubs-backend/internal/domain/entity"

// ClubCreate carries the fields for a new club. The profile image is
// uploaded to blob storage before the row is written.
type ClubCreate struct {
	Name         string
	Campus       entity.Campus
	Description  string
	ProfileImage []byte
	ImageName    string
	ContentType  string
}

// ClubUpdate is a partial update: nil fields are left unchanged.
type ClubUpdate struct {
	Name        *string
	Campus      *entity.Campus
	Description *string
}

// Fields returns the column map for the set fields.
func (u ClubUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Campus != nil {
		fields["campus"] = *u.Campus
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	return fields
}

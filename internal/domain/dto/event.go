package dto

import "time"

// EventCreate carries the fields for a new event under a club.
type EventCreate struct {
	ClubID      string
	Name        string
	Description string
	Image       string
	Venue       string
	StartTime   time.Time
	EndTime     time.Time
}

// EventUpdate is a partial update: nil fields are left unchanged.
type EventUpdate struct {
	Name        *string
	Description *string
	Image       *string
	Venue       *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// Fields returns the column map for the set fields.
func (u EventUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.Venue != nil {
		fields["venue"] = *u.Venue
	}
	if u.StartTime != nil {
		fields["start_time"] = *u.StartTime
	}
	if u.EndTime != nil {
		fields["end_time"] = *u.EndTime
	}
	return fields
}

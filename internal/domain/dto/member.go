package dto

// ClubMember is a user joined through one of the club membership
// relations, as listed on a club page.
type ClubMember struct {
	ClubID string `json:"clubId"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image"`
}

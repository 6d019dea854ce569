package dto

// TeamAddMemberRequest payload.
type TeamAddMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// TeamMemberResponse is the public view of a team membership.
type TeamMemberResponse struct {
	ID          string   `json:"id"`
	OrganizerID string   `json:"organizer_id"`
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	RoleName    string   `json:"role_name"`
	Permissions []string `json:"permissions"`
}

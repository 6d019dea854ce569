package dto

import "time"

// EventCreateRequest payload.
type EventCreateRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Location    string     `json:"location"`
	// OwnerID lets admins create events owned by another account.
	OwnerID string `json:"owner_id,omitempty"`
}

// EventUpdateRequest payload; nil fields are left unchanged.
type EventUpdateRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

// EventResponse is the public view of an event.
type EventResponse struct {
	ID          string     `json:"id"`
	OrganizerID string     `json:"organizer_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Location    string     `json:"location,omitempty"`
}

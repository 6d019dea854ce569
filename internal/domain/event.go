package domain

import "time"

// EventType enumerates the kinds of listings an organizer can publish.
type EventType string

const (
	EventTypeGeneralPosting EventType = "GENERAL_POSTING"
	EventTypeFreeEvent      EventType = "FREE_EVENT"
	EventTypeSaveTheDate    EventType = "SAVE_THE_DATE"
	EventTypeClass          EventType = "CLASS"
	EventTypeTicketedEvent  EventType = "TICKETED_EVENT"
	EventTypeSeatedEvent    EventType = "SEATED_EVENT"
)

// EventStatus enumerates lifecycle states for events.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// Event is the aggregate for a published listing. OrganizerID references the
// owning user account.
type Event struct {
	ID          string
	OrganizerID string
	Name        string
	Description string
	Type        EventType
	Status      EventStatus
	StartsAt    time.Time
	EndsAt      *time.Time
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

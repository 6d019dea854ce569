package events

import (
	"time"

	"github.com/stepperslife/events-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffAssigned      EventType = "staff_assigned"
	EventStaffDeactivated   EventType = "staff_deactivated"
	EventTicketSold         EventType = "ticket_sold"
	EventTicketScanned      EventType = "ticket_scanned"
	EventTransferCreated    EventType = "transfer_created"
	EventTransferAccepted   EventType = "transfer_accepted"
	EventTransferExpired    EventType = "transfer_expired"
	EventTeamMemberAdded    EventType = "team_member_added"
	EventTeamMemberRemoved  EventType = "team_member_removed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StaffAssignedPayload payload.
type StaffAssignedPayload struct {
	StaffID        string           `json:"staff_id"`
	EventID        string           `json:"event_id"`
	StaffUserID    string           `json:"staff_user_id"`
	Role           domain.StaffRole `json:"role"`
	HierarchyLevel int              `json:"hierarchy_level"`
}

// StaffDeactivatedPayload payload.
type StaffDeactivatedPayload struct {
	StaffID string `json:"staff_id"`
	EventID string `json:"event_id"`
}

// TicketSoldPayload payload.
type TicketSoldPayload struct {
	TicketID      string  `json:"ticket_id"`
	EventID       string  `json:"event_id"`
	AttendeeEmail string  `json:"attendee_email"`
	SoldByStaffID *string `json:"sold_by_staff_id,omitempty"`
}

// TicketScannedPayload payload.
type TicketScannedPayload struct {
	TicketID string `json:"ticket_id"`
	EventID  string `json:"event_id"`
}

// TransferCreatedPayload payload.
type TransferCreatedPayload struct {
	TransferID string    `json:"transfer_id"`
	TicketID   string    `json:"ticket_id"`
	ToEmail    string    `json:"to_email"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// TransferAcceptedPayload payload.
type TransferAcceptedPayload struct {
	TransferID string `json:"transfer_id"`
	TicketID   string `json:"ticket_id"`
}

// TransferExpiredPayload payload.
type TransferExpiredPayload struct {
	TransferID string `json:"transfer_id"`
	TicketID   string `json:"ticket_id"`
}

// TeamMemberAddedPayload payload.
type TeamMemberAddedPayload struct {
	MemberID    string                   `json:"member_id"`
	OrganizerID string                   `json:"organizer_id"`
	UserID      string                   `json:"user_id"`
	Role        domain.OrganizerTeamRole `json:"role"`
}

// TeamMemberRemovedPayload payload.
type TeamMemberRemovedPayload struct {
	MemberID    string `json:"member_id"`
	OrganizerID string `json:"organizer_id"`
}

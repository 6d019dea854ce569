package dto

import "time"

// TicketSellRequest payload.
type TicketSellRequest struct {
	AttendeeEmail string `json:"attendee_email"`
	AttendeeName  string `json:"attendee_name"`
}

// TicketResponse is the public view of a ticket.
type TicketResponse struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	AttendeeEmail string     `json:"attendee_email"`
	AttendeeName  string     `json:"attendee_name,omitempty"`
	Status        string     `json:"status"`
	ScannedAt     *time.Time `json:"scanned_at,omitempty"`
}

// TransferCreateRequest payload.
type TransferCreateRequest struct {
	TicketID string `json:"ticket_id"`
	ToEmail  string `json:"to_email"`
}

// TransferResponse is the public view of a transfer.
type TransferResponse struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	EventID   string    `json:"event_id"`
	ToEmail   string    `json:"to_email"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

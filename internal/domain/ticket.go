package domain

import "time"

// TicketStatus enumerates lifecycle states for issued tickets.
type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "VALID"
	TicketStatusScanned   TicketStatus = "SCANNED"
	TicketStatusRefunded  TicketStatus = "REFUNDED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
)

// Ticket is one issued admission. AttendeeEmail establishes ownership: it is
// compared verbatim against the holder account's email.
type Ticket struct {
	ID            string
	EventID       string
	AttendeeEmail string
	AttendeeName  string
	Status        TicketStatus
	SoldByStaffID *string
	ScannedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

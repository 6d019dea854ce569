package domain

import "time"

// TransferStatus enumerates lifecycle states for ticket transfers.
type TransferStatus string

const (
	TransferStatusPending     TransferStatus = "PENDING"
	TransferStatusAccepted    TransferStatus = "ACCEPTED"
	TransferStatusRejected    TransferStatus = "REJECTED"
	TransferStatusCancelled   TransferStatus = "CANCELLED"
	TransferStatusAutoExpired TransferStatus = "AUTO_EXPIRED"
)

// Transfer timing. A pending transfer expires 48h after creation; a reminder
// goes out once it has been pending for 24h.
const (
	TransferExpiration = 172800000 * time.Millisecond
	TransferReminder   = 86400000 * time.Millisecond
)

// TicketTransfer is a pending handover of a ticket to another attendee.
type TicketTransfer struct {
	ID             string
	TicketID       string
	EventID        string
	FromUserID     string
	ToEmail        string
	Status         TransferStatus
	ReminderSentAt *time.Time
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

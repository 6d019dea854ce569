package domain

import "time"

// UserRole enumerates platform-level account roles.
type UserRole string

const (
	UserRoleAdmin           UserRole = "admin"
	UserRoleOrganizer       UserRole = "organizer"
	UserRoleInstructor      UserRole = "instructor"
	UserRoleRestaurateur    UserRole = "restaurateur"
	UserRoleServiceProvider UserRole = "service_provider"
	UserRoleUser            UserRole = "user"
)

// User is the domain model for platform accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	// CanCreateTicketedEvents overrides the default ticketed-event
	// entitlement. nil means the account keeps the default (allowed).
	CanCreateTicketedEvents *bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

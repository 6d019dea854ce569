// Package authz holds the authorization decision logic for the platform:
// platform-role checks, event ownership, the per-event staff hierarchy and
// admin content-ownership restrictions. Every function is a predicate over an
// actor and an optional target; nothing here ever mutates state. Checks that
// need to consult stored records live on Checker, everything else is a plain
// function.
package authz

import "github.com/stepperslife/events-service/internal/domain"

// AdminAllowedEventTypes lists the event types an admin account may own.
// Admins curate community content but must not own revenue-bearing events.
var AdminAllowedEventTypes = []domain.EventType{
	domain.EventTypeGeneralPosting,
	domain.EventTypeFreeEvent,
	domain.EventTypeSaveTheDate,
	domain.EventTypeClass,
}

// AdminBlockedEventTypes lists the event types an admin account must never
// own.
var AdminBlockedEventTypes = []domain.EventType{
	domain.EventTypeTicketedEvent,
	domain.EventTypeSeatedEvent,
}

// IsAdmin reports whether the user holds the platform admin role.
func IsAdmin(user *domain.User) bool {
	return user != nil && user.Role == domain.UserRoleAdmin
}

// IsOrganizer reports whether the user can act as an event organizer.
// Admins qualify for every organizer-level check.
func IsOrganizer(user *domain.User) bool {
	if user == nil {
		return false
	}
	return user.Role == domain.UserRoleOrganizer || IsAdmin(user)
}

// IsEventOrganizer reports whether the user owns the event. Admins pass
// unconditionally.
func IsEventOrganizer(user *domain.User, event *domain.Event) bool {
	if user == nil || event == nil {
		return false
	}
	return IsAdmin(user) || event.OrganizerID == user.ID
}

// OwnsTicket reports whether the ticket was issued to the user's email.
// The comparison is verbatim; email normalization happens at registration.
func OwnsTicket(user *domain.User, ticket *domain.Ticket) bool {
	if user == nil || ticket == nil {
		return false
	}
	return ticket.AttendeeEmail == user.Email
}

// CanAssignSubSellers reports whether the staff record carries the
// sub-seller delegation flag.
func CanAssignSubSellers(staff *domain.EventStaff) bool {
	return staff != nil && staff.CanAssignSubSellers
}

// IsWithinHierarchyLimit reports whether a staff record at currentLevel may
// still delegate. Delegation stops once the chain reaches HierarchyMaxDepth.
func IsWithinHierarchyLimit(currentLevel int) bool {
	return currentLevel < domain.HierarchyMaxDepth
}

// NextHierarchyLevel returns the level a newly delegated record sits at.
func NextHierarchyLevel(parentLevel int) int {
	return parentLevel + 1
}

// CanCreateTicketedEvents reports whether the user may create ticketed
// events. The per-account flag defaults to allowed when unset; admins
// override an explicit false.
func CanCreateTicketedEvents(user *domain.User) bool {
	if user == nil {
		return false
	}
	if IsAdmin(user) {
		return true
	}
	return user.CanCreateTicketedEvents == nil || *user.CanCreateTicketedEvents
}

// IsRestaurateur reports whether the user can manage restaurant listings.
func IsRestaurateur(user *domain.User) bool {
	if user == nil {
		return false
	}
	return user.Role == domain.UserRoleRestaurateur || IsAdmin(user)
}

// IsRestaurantOwner reports whether the user owns the restaurant. Admins
// pass unconditionally.
func IsRestaurantOwner(user *domain.User, restaurant *domain.Restaurant) bool {
	if user == nil || restaurant == nil {
		return false
	}
	return IsAdmin(user) || restaurant.OwnerID == user.ID
}

// CanAdminCreateEventType reports whether an admin account may own events of
// the given type.
func CanAdminCreateEventType(eventType domain.EventType) bool {
	for _, t := range AdminAllowedEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// IsEventTypeBlockedForAdmin reports whether the type is on the admin block
// list.
func IsEventTypeBlockedForAdmin(eventType domain.EventType) bool {
	for _, t := range AdminBlockedEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// CanCreateOnBehalfOf reports whether the user may create content owned by
// another account.
func CanCreateOnBehalfOf(user *domain.User) bool {
	return IsAdmin(user)
}

// CanCreateContentAsOwner reports whether the user may own content of the
// given type. Non-admins are never restricted here. For admins with a known
// type the allow-list decides; an empty type passes the coarse check and the
// fine-grained gate runs at the write site.
func CanCreateContentAsOwner(user *domain.User, eventType domain.EventType) bool {
	if user == nil {
		return false
	}
	if !IsAdmin(user) {
		return true
	}
	if eventType == "" {
		return true
	}
	return CanAdminCreateEventType(eventType)
}

// CanBeContentOwner mirrors CanCreateContentAsOwner.
func CanBeContentOwner(user *domain.User, eventType domain.EventType) bool {
	return CanCreateContentAsOwner(user, eventType)
}

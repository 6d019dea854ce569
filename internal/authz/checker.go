package authz

import (
	"context"

	"github.com/stepperslife/events-service/internal/domain"
)

// Store is the read-only view of stored records the checker consults.
// Implementations return (nil, nil) when the record does not exist; a missing
// record is a business-rule denial, not an error. Infrastructure failures
// propagate unchanged.
type Store interface {
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	GetStaff(ctx context.Context, id string) (*domain.EventStaff, error)
	// FindActiveStaff returns the active staff record for (eventID, userID),
	// or nil when the user has no active assignment on the event. Inactive
	// records are filtered out at the query layer and never surface here.
	FindActiveStaff(ctx context.Context, eventID, userID string) (*domain.EventStaff, error)
}

// Checker answers authorization questions that depend on stored records.
type Checker struct {
	store Store
}

// NewChecker builds a checker over the given store.
func NewChecker(store Store) *Checker {
	return &Checker{store: store}
}

// CanManageStaff reports whether the user may manage the given staff record:
// admins, the record's organizer-of-reference, or the immediate parent in the
// delegation chain. The chain is deliberately not climbed further; a
// grandparent has no automatic authority over records two hops down.
func (c *Checker) CanManageStaff(ctx context.Context, user *domain.User, staff *domain.EventStaff) (bool, error) {
	if user == nil || staff == nil {
		return false, nil
	}
	if IsAdmin(user) {
		return true, nil
	}
	if staff.OrganizerID == user.ID {
		return true, nil
	}
	if staff.AssignedByStaffID == nil {
		return false, nil
	}
	parent, err := c.store.GetStaff(ctx, *staff.AssignedByStaffID)
	if err != nil {
		return false, err
	}
	return parent != nil && parent.StaffUserID == user.ID, nil
}

// CanTransferTickets reports whether the user may manage ticket transfers
// for the event: the organizer, or any active staff assignment.
func (c *Checker) CanTransferTickets(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	if user == nil {
		return false, nil
	}
	event, err := c.store.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}
	if IsEventOrganizer(user, event) {
		return true, nil
	}
	staff, err := c.store.FindActiveStaff(ctx, eventID, user.ID)
	if err != nil {
		return false, err
	}
	return staff != nil, nil
}

// CanScanTickets reports whether the user may scan tickets at the event.
// STAFF scans by role; TEAM_MEMBERS and ASSOCIATES need the canScan flag.
func (c *Checker) CanScanTickets(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	if user == nil {
		return false, nil
	}
	event, err := c.store.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}
	if IsEventOrganizer(user, event) {
		return true, nil
	}
	staff, err := c.store.FindActiveStaff(ctx, eventID, user.ID)
	if err != nil {
		return false, err
	}
	if staff == nil {
		return false, nil
	}
	switch staff.Role {
	case domain.StaffRoleStaff:
		return true, nil
	case domain.StaffRoleTeamMembers, domain.StaffRoleAssociates:
		return staff.CanScan, nil
	default:
		return false, nil
	}
}

// CanSellTickets reports whether the user may sell tickets for the event.
// TEAM_MEMBERS and ASSOCIATES sell by role; STAFF only when canScan is set.
// The scan flag doubles as STAFF's sell gate, there is no separate sell flag.
func (c *Checker) CanSellTickets(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	if user == nil {
		return false, nil
	}
	event, err := c.store.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}
	if IsEventOrganizer(user, event) {
		return true, nil
	}
	staff, err := c.store.FindActiveStaff(ctx, eventID, user.ID)
	if err != nil {
		return false, err
	}
	if staff == nil {
		return false, nil
	}
	switch staff.Role {
	case domain.StaffRoleTeamMembers, domain.StaffRoleAssociates:
		return true, nil
	case domain.StaffRoleStaff:
		return staff.CanScan, nil
	default:
		return false, nil
	}
}

// CanViewAnalytics reports whether the user may view the event's analytics.
// Staff assignments grant no analytics access.
func (c *Checker) CanViewAnalytics(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	return c.organizerOnly(ctx, user, eventID)
}

// CanModifyEvent reports whether the user may edit the event.
func (c *Checker) CanModifyEvent(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	return c.organizerOnly(ctx, user, eventID)
}

// CanDeleteEvent reports whether the user may delete the event.
func (c *Checker) CanDeleteEvent(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	return c.organizerOnly(ctx, user, eventID)
}

func (c *Checker) organizerOnly(ctx context.Context, user *domain.User, eventID string) (bool, error) {
	if user == nil {
		return false, nil
	}
	event, err := c.store.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	if event == nil {
		return false, nil
	}
	return IsEventOrganizer(user, event), nil
}

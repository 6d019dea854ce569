package authz

import (
	"context"
	"fmt"

	"github.com/stepperslife/events-service/internal/domain"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// Denied builds the canonical authorization error. The message is generic on
// purpose: it must not reveal which rule rejected the caller.
func Denied(action string) error {
	return apperrors.NewForbidden(fmt.Sprintf(
		"You don't have permission to %s. Please contact an administrator if you believe this is an error.",
		action,
	))
}

// RequireAdmin rejects non-admin callers.
func RequireAdmin(user *domain.User) error {
	if !IsAdmin(user) {
		return Denied("perform this action")
	}
	return nil
}

// RequireOrganizer rejects callers without organizer privileges.
func RequireOrganizer(user *domain.User) error {
	if !IsOrganizer(user) {
		return Denied("manage events")
	}
	return nil
}

// RequireEventOrganizer rejects callers who do not own the event. A missing
// event also rejects.
func (c *Checker) RequireEventOrganizer(ctx context.Context, user *domain.User, eventID string) error {
	ok, err := c.organizerOnly(ctx, user, eventID)
	if err != nil {
		return err
	}
	if !ok {
		return Denied("manage this event")
	}
	return nil
}

// RequireCanManageStaff rejects callers who may not manage the staff record.
// A missing record also rejects.
func (c *Checker) RequireCanManageStaff(ctx context.Context, user *domain.User, staffID string) error {
	staff, err := c.store.GetStaff(ctx, staffID)
	if err != nil {
		return err
	}
	ok, err := c.CanManageStaff(ctx, user, staff)
	if err != nil {
		return err
	}
	if !ok {
		return Denied("manage this staff member")
	}
	return nil
}

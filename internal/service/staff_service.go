package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/events"
	"github.com/stepperslife/events-service/internal/repository"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// StaffService manages per-event staff assignments and the delegation chain.
type StaffService struct {
	events     repository.EventRepository
	staff      repository.StaffRepository
	checker    *authz.Checker
	dispatcher events.Dispatcher
}

// NewStaffService constructs the service.
func NewStaffService(eventRepo repository.EventRepository, staffRepo repository.StaffRepository, checker *authz.Checker, dispatcher events.Dispatcher) *StaffService {
	return &StaffService{events: eventRepo, staff: staffRepo, checker: checker, dispatcher: dispatcher}
}

// AssignStaffInput carries the fields for a new staff assignment. Role
// accepts legacy values; they are validated, stored as given, and normalized
// only for display.
type AssignStaffInput struct {
	EventID             string
	StaffUserID         string
	Role                string
	CanScan             bool
	CanAssignSubSellers bool
	CommissionType      domain.CommissionType
	CommissionRate      float64
}

// AssignStaff creates a root-level staff record. Only the event's organizer
// (or an admin) may do this.
func (s *StaffService) AssignStaff(ctx context.Context, actor *domain.User, input AssignStaffInput) (*domain.EventStaff, error) {
	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if !authz.IsEventOrganizer(actor, event) {
		return nil, authz.Denied("assign staff to this event")
	}
	return s.createStaff(ctx, actor, event, input, event.OrganizerID, nil, domain.HierarchyRootLevel)
}

// DelegateSubSeller creates a staff record one level below the delegating
// staff record. The actor must hold the parent record, the parent must carry
// the sub-seller flag, and the chain must stay within the depth limit.
func (s *StaffService) DelegateSubSeller(ctx context.Context, actor *domain.User, parentStaffID string, input AssignStaffInput) (*domain.EventStaff, error) {
	parent, err := s.getStaff(ctx, parentStaffID)
	if err != nil {
		return nil, err
	}
	if actor == nil || (parent.StaffUserID != actor.ID && !authz.IsAdmin(actor)) {
		return nil, authz.Denied("delegate from this staff record")
	}
	if !parent.IsActive {
		return nil, apperrors.NewConflict("staff record inactive", map[string]any{"staff_id": parent.ID})
	}
	if !authz.CanAssignSubSellers(parent) {
		return nil, authz.Denied("assign sub-sellers")
	}
	if !authz.IsWithinHierarchyLimit(parent.HierarchyLevel) {
		return nil, apperrors.NewConflict("staff hierarchy depth limit reached",
			map[string]any{"level": parent.HierarchyLevel, "max_depth": domain.HierarchyMaxDepth})
	}

	event, err := s.getEvent(ctx, parent.EventID)
	if err != nil {
		return nil, err
	}
	input.EventID = parent.EventID
	// The delegator becomes the record's organizer-of-reference. The event's
	// organizer manages sub-sellers through the chain, not directly.
	return s.createStaff(ctx, actor, event, input, parent.StaffUserID, &parent.ID, authz.NextHierarchyLevel(parent.HierarchyLevel))
}

func (s *StaffService) createStaff(ctx context.Context, actor *domain.User, event *domain.Event, input AssignStaffInput, organizerID string, parentID *string, level int) (*domain.EventStaff, error) {
	if input.StaffUserID == "" {
		return nil, apperrors.NewValidationError("staff user required", nil)
	}
	if !domain.IsStaffRole(input.Role) {
		return nil, apperrors.NewValidationError("unknown staff role", map[string]any{"role": input.Role})
	}
	commissionType := input.CommissionType
	if commissionType == "" {
		commissionType = domain.CommissionTypePercentage
	}

	staff := &domain.EventStaff{
		ID:                  uuid.NewString(),
		EventID:             event.ID,
		StaffUserID:         input.StaffUserID,
		OrganizerID:         organizerID,
		Role:                domain.StaffRole(input.Role),
		IsActive:            true,
		CanScan:             input.CanScan,
		CanAssignSubSellers: input.CanAssignSubSellers,
		AssignedByStaffID:   parentID,
		HierarchyLevel:      level,
		CommissionType:      commissionType,
		CommissionRate:      input.CommissionRate,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventStaffAssigned, events.StaffAssignedPayload{
		StaffID:        staff.ID,
		EventID:        staff.EventID,
		StaffUserID:    staff.StaffUserID,
		Role:           staff.Role,
		HierarchyLevel: staff.HierarchyLevel,
	})
	return staff, nil
}

// DeactivateStaff flags the record inactive. Authorized for the event's
// organizer, an admin, or the record's immediate parent in the chain.
func (s *StaffService) DeactivateStaff(ctx context.Context, actor *domain.User, staffID string) error {
	if err := s.checker.RequireCanManageStaff(ctx, actor, staffID); err != nil {
		return err
	}
	staff, err := s.getStaff(ctx, staffID)
	if err != nil {
		return err
	}
	if err := s.staff.Deactivate(ctx, staffID); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, actor, events.EventStaffDeactivated, events.StaffDeactivatedPayload{
		StaffID: staff.ID,
		EventID: staff.EventID,
	})
	return nil
}

// UpdateStaffFlags changes scan/delegation flags and commission terms.
func (s *StaffService) UpdateStaffFlags(ctx context.Context, actor *domain.User, staffID string, canScan, canAssignSubSellers *bool) (*domain.EventStaff, error) {
	if err := s.checker.RequireCanManageStaff(ctx, actor, staffID); err != nil {
		return nil, err
	}
	staff, err := s.getStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if canScan != nil {
		staff.CanScan = *canScan
	}
	if canAssignSubSellers != nil {
		staff.CanAssignSubSellers = *canAssignSubSellers
	}
	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// ListEventStaff returns the event's staff for its organizer.
func (s *StaffService) ListEventStaff(ctx context.Context, actor *domain.User, eventID string, activeOnly bool) ([]domain.EventStaff, error) {
	if err := s.checker.RequireEventOrganizer(ctx, actor, eventID); err != nil {
		return nil, err
	}
	list, err := s.staff.ListByEvent(ctx, eventID, activeOnly)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

func (s *StaffService) getEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("event", map[string]any{"event_id": id})
		}
		return nil, err
	}
	return event, nil
}

func (s *StaffService) getStaff(ctx context.Context, id string) (*domain.EventStaff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff record", map[string]any{"staff_id": id})
		}
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) publish(ctx context.Context, actor *domain.User, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	actorID := ""
	if actor != nil {
		actorID = actor.ID
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

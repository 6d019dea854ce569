package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/repository"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// EventService manages event lifecycle behind the authorization gates.
type EventService struct {
	events  repository.EventRepository
	tickets repository.TicketRepository
	users   repository.UserRepository
	checker *authz.Checker
}

// NewEventService constructs the service.
func NewEventService(events repository.EventRepository, tickets repository.TicketRepository, users repository.UserRepository, checker *authz.Checker) *EventService {
	return &EventService{events: events, tickets: tickets, users: users, checker: checker}
}

// CreateEventInput carries the fields for a new event. OwnerID is optional:
// admins may create events owned by another account.
type CreateEventInput struct {
	Name        string
	Description string
	Type        domain.EventType
	StartsAt    time.Time
	EndsAt      *time.Time
	Location    string
	OwnerID     string
}

// CreateEvent validates content-ownership rules and persists the event.
func (s *EventService) CreateEvent(ctx context.Context, actor *domain.User, input CreateEventInput) (*domain.Event, error) {
	if input.Name == "" || input.Type == "" {
		return nil, apperrors.NewValidationError("name and type required", nil)
	}

	owner := actor
	if input.OwnerID != "" && (actor == nil || input.OwnerID != actor.ID) {
		if !authz.CanCreateOnBehalfOf(actor) {
			return nil, authz.Denied("create events on behalf of another account")
		}
		fetched, err := s.users.GetByID(ctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("user", map[string]any{"user_id": input.OwnerID})
			}
			return nil, err
		}
		owner = fetched
	}

	if !authz.CanBeContentOwner(owner, input.Type) {
		return nil, authz.Denied("own this type of event")
	}
	if !authz.CanCreateContentAsOwner(actor, input.Type) {
		return nil, authz.Denied("create this type of event")
	}
	if input.Type == domain.EventTypeTicketedEvent || input.Type == domain.EventTypeSeatedEvent {
		if !authz.CanCreateTicketedEvents(owner) {
			return nil, authz.Denied("create ticketed events")
		}
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		OrganizerID: owner.ID,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Status:      domain.EventStatusDraft,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Location:    input.Location,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// UpdateEventInput carries mutable event fields.
type UpdateEventInput struct {
	Name        *string
	Description *string
	Status      *domain.EventStatus
	StartsAt    *time.Time
	EndsAt      *time.Time
	Location    *string
}

// UpdateEvent applies changes after the organizer check.
func (s *EventService) UpdateEvent(ctx context.Context, actor *domain.User, eventID string, input UpdateEventInput) (*domain.Event, error) {
	if err := s.checker.RequireEventOrganizer(ctx, actor, eventID); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Status != nil {
		event.Status = *input.Status
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = input.EndsAt
	}
	if input.Location != nil {
		event.Location = *input.Location
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, apperrors.MapError(err)
	}
	return event, nil
}

// DeleteEvent removes an event after the organizer check.
func (s *EventService) DeleteEvent(ctx context.Context, actor *domain.User, eventID string) error {
	if err := s.checker.RequireEventOrganizer(ctx, actor, eventID); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// EventAnalytics summarizes ticket counts for organizer dashboards.
type EventAnalytics struct {
	EventID     string `json:"event_id"`
	TicketsSold int    `json:"tickets_sold"`
	TicketsUsed int    `json:"tickets_used"`
}

// Analytics returns ticket counts. Staff assignments grant no access here.
func (s *EventService) Analytics(ctx context.Context, actor *domain.User, eventID string) (*EventAnalytics, error) {
	ok, err := s.checker.CanViewAnalytics(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authz.Denied("view analytics for this event")
	}

	tickets, err := s.tickets.ListByEvent(ctx, eventID, 1000, 0)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	summary := &EventAnalytics{EventID: eventID}
	for _, t := range tickets {
		switch t.Status {
		case domain.TicketStatusValid:
			summary.TicketsSold++
		case domain.TicketStatusScanned:
			summary.TicketsSold++
			summary.TicketsUsed++
		}
	}
	return summary, nil
}

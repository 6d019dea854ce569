package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/events"
	"github.com/stepperslife/events-service/internal/repository"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// TicketService handles door operations: selling and scanning.
type TicketService struct {
	tickets    repository.TicketRepository
	staff      repository.StaffRepository
	checker    *authz.Checker
	dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, staff repository.StaffRepository, checker *authz.Checker, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, staff: staff, checker: checker, dispatcher: dispatcher}
}

// SellTicket issues a ticket for the event. Sale eligibility follows the
// staff role matrix; the selling staff record, if any, is stamped on the
// ticket for commission attribution.
func (s *TicketService) SellTicket(ctx context.Context, actor *domain.User, eventID, attendeeEmail, attendeeName string) (*domain.Ticket, error) {
	attendeeEmail = strings.TrimSpace(attendeeEmail)
	if attendeeEmail == "" {
		return nil, apperrors.NewValidationError("attendee email required", nil)
	}

	ok, err := s.checker.CanSellTickets(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authz.Denied("sell tickets for this event")
	}

	ticket := &domain.Ticket{
		ID:            uuid.NewString(),
		EventID:       eventID,
		AttendeeEmail: attendeeEmail,
		AttendeeName:  attendeeName,
		Status:        domain.TicketStatusValid,
	}
	if actor != nil {
		staff, err := s.staff.FindActive(ctx, eventID, actor.ID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if staff != nil {
			ticket.SoldByStaffID = &staff.ID
		}
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventTicketSold, events.TicketSoldPayload{
		TicketID:      ticket.ID,
		EventID:       ticket.EventID,
		AttendeeEmail: ticket.AttendeeEmail,
		SoldByStaffID: ticket.SoldByStaffID,
	})
	return ticket, nil
}

// ScanTicket marks a ticket used at the door.
func (s *TicketService) ScanTicket(ctx context.Context, actor *domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	ok, err := s.checker.CanScanTickets(ctx, actor, ticket.EventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, authz.Denied("scan tickets for this event")
	}

	if ticket.Status != domain.TicketStatusValid {
		return nil, apperrors.NewConflict("ticket not scannable",
			map[string]any{"ticket_id": ticket.ID, "status": ticket.Status})
	}

	now := time.Now()
	ticket.Status = domain.TicketStatusScanned
	ticket.ScannedAt = &now
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventTicketScanned, events.TicketScannedPayload{
		TicketID: ticket.ID,
		EventID:  ticket.EventID,
	})
	return ticket, nil
}

func (s *TicketService) getTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, actor *domain.User, eventType events.EventType, payload interface{}) {
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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/events"
	"github.com/stepperslife/events-service/internal/repository"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// TransferService manages ticket handovers and their expiration.
type TransferService struct {
	transfers  repository.TransferRepository
	tickets    repository.TicketRepository
	checker    *authz.Checker
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewTransferService constructs the service.
func NewTransferService(transfers repository.TransferRepository, tickets repository.TicketRepository, checker *authz.Checker, dispatcher events.Dispatcher, logger *zap.Logger) *TransferService {
	return &TransferService{
		transfers:  transfers,
		tickets:    tickets,
		checker:    checker,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// InitiateTransfer opens a pending handover. The ticket holder may transfer
// their own ticket; organizers and active event staff may transfer any
// ticket on their event.
func (s *TransferService) InitiateTransfer(ctx context.Context, actor *domain.User, ticketID, toEmail string) (*domain.TicketTransfer, error) {
	toEmail = strings.ToLower(strings.TrimSpace(toEmail))
	if toEmail == "" {
		return nil, apperrors.NewValidationError("recipient email required", nil)
	}

	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != domain.TicketStatusValid {
		return nil, apperrors.NewConflict("ticket not transferable",
			map[string]any{"ticket_id": ticket.ID, "status": ticket.Status})
	}

	allowed := authz.OwnsTicket(actor, ticket)
	if !allowed {
		allowed, err = s.checker.CanTransferTickets(ctx, actor, ticket.EventID)
		if err != nil {
			return nil, err
		}
	}
	if !allowed {
		return nil, authz.Denied("transfer this ticket")
	}

	now := time.Now()
	transfer := &domain.TicketTransfer{
		ID:         uuid.NewString(),
		TicketID:   ticket.ID,
		EventID:    ticket.EventID,
		FromUserID: actor.ID,
		ToEmail:    toEmail,
		Status:     domain.TransferStatusPending,
		ExpiresAt:  now.Add(domain.TransferExpiration),
	}
	if err := s.transfers.Create(ctx, transfer); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventTransferCreated, events.TransferCreatedPayload{
		TransferID: transfer.ID,
		TicketID:   transfer.TicketID,
		ToEmail:    transfer.ToEmail,
		ExpiresAt:  transfer.ExpiresAt,
	})
	return transfer, nil
}

// AcceptTransfer completes a pending handover; only the recipient may accept.
func (s *TransferService) AcceptTransfer(ctx context.Context, actor *domain.User, transferID string) (*domain.TicketTransfer, error) {
	transfer, err := s.getPending(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !strings.EqualFold(actor.Email, transfer.ToEmail) {
		return nil, authz.Denied("accept this transfer")
	}

	ticket, err := s.getTicket(ctx, transfer.TicketID)
	if err != nil {
		return nil, err
	}
	ticket.AttendeeEmail = actor.Email
	ticket.AttendeeName = actor.Name
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	transfer.Status = domain.TransferStatusAccepted
	if err := s.transfers.Update(ctx, transfer); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventTransferAccepted, events.TransferAcceptedPayload{
		TransferID: transfer.ID,
		TicketID:   transfer.TicketID,
	})
	return transfer, nil
}

// RejectTransfer declines a pending handover; only the recipient may reject.
func (s *TransferService) RejectTransfer(ctx context.Context, actor *domain.User, transferID string) (*domain.TicketTransfer, error) {
	transfer, err := s.getPending(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !strings.EqualFold(actor.Email, transfer.ToEmail) {
		return nil, authz.Denied("reject this transfer")
	}

	transfer.Status = domain.TransferStatusRejected
	if err := s.transfers.Update(ctx, transfer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return transfer, nil
}

// CancelTransfer withdraws a pending handover. The sender may cancel, as may
// anyone allowed to manage transfers on the event.
func (s *TransferService) CancelTransfer(ctx context.Context, actor *domain.User, transferID string) (*domain.TicketTransfer, error) {
	transfer, err := s.getPending(ctx, transferID)
	if err != nil {
		return nil, err
	}

	allowed := actor != nil && actor.ID == transfer.FromUserID
	if !allowed {
		allowed, err = s.checker.CanTransferTickets(ctx, actor, transfer.EventID)
		if err != nil {
			return nil, err
		}
	}
	if !allowed {
		return nil, authz.Denied("cancel this transfer")
	}

	transfer.Status = domain.TransferStatusCancelled
	if err := s.transfers.Update(ctx, transfer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return transfer, nil
}

// ExpireStale moves overdue PENDING transfers to AUTO_EXPIRED. Returns the
// transfers that were expired in this pass.
func (s *TransferService) ExpireStale(ctx context.Context, now time.Time) ([]domain.TicketTransfer, error) {
	stale, err := s.transfers.ListPendingExpired(ctx, now, 100)
	if err != nil {
		return nil, err
	}

	var expired []domain.TicketTransfer
	for i := range stale {
		transfer := stale[i]
		transfer.Status = domain.TransferStatusAutoExpired
		if err := s.transfers.Update(ctx, &transfer); err != nil {
			s.logger.Warn("expire transfer", zap.String("transfer_id", transfer.ID), zap.Error(err))
			continue
		}
		expired = append(expired, transfer)
		s.publish(ctx, nil, events.EventTransferExpired, events.TransferExpiredPayload{
			TransferID: transfer.ID,
			TicketID:   transfer.TicketID,
		})
	}
	return expired, nil
}

// DueForReminder lists PENDING transfers that have waited past the reminder
// window without a reminder being recorded.
func (s *TransferService) DueForReminder(ctx context.Context, now time.Time) ([]domain.TicketTransfer, error) {
	return s.transfers.ListPendingForReminder(ctx, now.Add(-domain.TransferReminder), 100)
}

// MarkReminderSent records that the recipient was nudged.
func (s *TransferService) MarkReminderSent(ctx context.Context, transferID string, at time.Time) error {
	transfer, err := s.transfers.GetByID(ctx, transferID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("transfer", map[string]any{"transfer_id": transferID})
		}
		return err
	}
	transfer.ReminderSentAt = &at
	if err := s.transfers.Update(ctx, transfer); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *TransferService) getPending(ctx context.Context, id string) (*domain.TicketTransfer, error) {
	transfer, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("transfer", map[string]any{"transfer_id": id})
		}
		return nil, err
	}
	if transfer.Status != domain.TransferStatusPending {
		return nil, apperrors.NewConflict("transfer no longer pending",
			map[string]any{"transfer_id": transfer.ID, "status": transfer.Status})
	}
	return transfer, nil
}

func (s *TransferService) getTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TransferService) publish(ctx context.Context, actor *domain.User, eventType events.EventType, payload interface{}) {
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

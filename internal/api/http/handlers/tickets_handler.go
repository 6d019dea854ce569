package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stepperslife/events-service/internal/api/dto"
	"github.com/stepperslife/events-service/internal/auth"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/service"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// TicketsHandler exposes door operations and transfers.
type TicketsHandler struct {
	tickets   *service.TicketService
	transfers *service.TransferService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService, transfers *service.TransferService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, transfers: transfers}
}

// Sell handles POST /events/:id/tickets.
func (h *TicketsHandler) Sell(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TicketSellRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.SellTicket(c.Context(), actor, c.Params("id"), req.AttendeeEmail, req.AttendeeName)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Scan handles POST /tickets/:id/scan.
func (h *TicketsHandler) Scan(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := h.tickets.ScanTicket(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// CreateTransfer handles POST /transfers.
func (h *TicketsHandler) CreateTransfer(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TransferCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.TicketID == "" || req.ToEmail == "" {
		return apperrors.NewValidationError("ticket_id and to_email required", nil)
	}

	transfer, err := h.transfers.InitiateTransfer(c.Context(), actor, req.TicketID, req.ToEmail)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": transferResponse(transfer)})
}

// AcceptTransfer handles POST /transfers/:id/accept.
func (h *TicketsHandler) AcceptTransfer(c *fiber.Ctx) error {
	return h.transition(c, h.transfers.AcceptTransfer)
}

// RejectTransfer handles POST /transfers/:id/reject.
func (h *TicketsHandler) RejectTransfer(c *fiber.Ctx) error {
	return h.transition(c, h.transfers.RejectTransfer)
}

// CancelTransfer handles POST /transfers/:id/cancel.
func (h *TicketsHandler) CancelTransfer(c *fiber.Ctx) error {
	return h.transition(c, h.transfers.CancelTransfer)
}

func (h *TicketsHandler) transition(c *fiber.Ctx, fn func(ctx context.Context, actor *domain.User, id string) (*domain.TicketTransfer, error)) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	transfer, err := fn(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": transferResponse(transfer)})
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:            ticket.ID,
		EventID:       ticket.EventID,
		AttendeeEmail: ticket.AttendeeEmail,
		AttendeeName:  ticket.AttendeeName,
		Status:        string(ticket.Status),
		ScannedAt:     ticket.ScannedAt,
	}
}

func transferResponse(transfer *domain.TicketTransfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:        transfer.ID,
		TicketID:  transfer.TicketID,
		EventID:   transfer.EventID,
		ToEmail:   transfer.ToEmail,
		Status:    string(transfer.Status),
		ExpiresAt: transfer.ExpiresAt,
	}
}

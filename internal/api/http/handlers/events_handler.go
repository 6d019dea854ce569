package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stepperslife/events-service/internal/api/dto"
	"github.com/stepperslife/events-service/internal/auth"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/service"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// EventsHandler exposes event lifecycle endpoints.
type EventsHandler struct {
	events *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(events *service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// Create handles POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.events.CreateEvent(c.Context(), actor, service.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        domain.EventType(req.Type),
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Location:    req.Location,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": eventResponse(event)})
}

// Update handles PATCH /events/:id.
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Location:    req.Location,
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		input.Status = &status
	}

	event, err := h.events.UpdateEvent(c.Context(), actor, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": eventResponse(event)})
}

// Delete handles DELETE /events/:id.
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.events.DeleteEvent(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

// Analytics handles GET /events/:id/analytics.
func (h *EventsHandler) Analytics(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	summary, err := h.events.Analytics(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

func eventResponse(event *domain.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		OrganizerID: event.OrganizerID,
		Name:        event.Name,
		Description: event.Description,
		Type:        string(event.Type),
		Status:      string(event.Status),
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Location:    event.Location,
	}
}

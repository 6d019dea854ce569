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

// StaffHandler exposes event staff management endpoints.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staffService}
}

// Assign handles POST /events/:id/staff.
func (h *StaffHandler) Assign(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.StaffAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	staff, err := h.staff.AssignStaff(c.Context(), actor, service.AssignStaffInput{
		EventID:             c.Params("id"),
		StaffUserID:         req.StaffUserID,
		Role:                req.Role,
		CanScan:             req.CanScan,
		CanAssignSubSellers: req.CanAssignSubSellers,
		CommissionType:      domain.CommissionType(req.CommissionType),
		CommissionRate:      req.CommissionRate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(staff)})
}

// Delegate handles POST /staff/:id/sub-sellers.
func (h *StaffHandler) Delegate(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.StaffAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	staff, err := h.staff.DelegateSubSeller(c.Context(), actor, c.Params("id"), service.AssignStaffInput{
		StaffUserID:         req.StaffUserID,
		Role:                req.Role,
		CanScan:             req.CanScan,
		CanAssignSubSellers: req.CanAssignSubSellers,
		CommissionType:      domain.CommissionType(req.CommissionType),
		CommissionRate:      req.CommissionRate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(staff)})
}

// Update handles PATCH /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	staff, err := h.staff.UpdateStaffFlags(c.Context(), actor, c.Params("id"), req.CanScan, req.CanAssignSubSellers)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Deactivate handles DELETE /staff/:id.
func (h *StaffHandler) Deactivate(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.staff.DeactivateStaff(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deactivated"}})
}

// List handles GET /events/:id/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	activeOnly := c.QueryBool("active_only", true)
	list, err := h.staff.ListEventStaff(c.Context(), actor, c.Params("id"), activeOnly)
	if err != nil {
		return err
	}

	out := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		out = append(out, staffResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

func staffResponse(staff *domain.EventStaff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:                  staff.ID,
		EventID:             staff.EventID,
		StaffUserID:         staff.StaffUserID,
		Role:                string(staff.Role),
		RoleName:            domain.RoleName(domain.MapToNewRole(staff.Role)),
		IsActive:            staff.IsActive,
		CanScan:             staff.CanScan,
		CanAssignSubSellers: staff.CanAssignSubSellers,
		AssignedByStaffID:   staff.AssignedByStaffID,
		HierarchyLevel:      staff.HierarchyLevel,
	}
}

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

// TeamsHandler exposes organizer team endpoints.
type TeamsHandler struct {
	team *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{team: teamService}
}

// AddMember handles POST /organizers/:id/team.
func (h *TeamsHandler) AddMember(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TeamAddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.UserID == "" || req.Role == "" {
		return apperrors.NewValidationError("user_id and role required", nil)
	}

	member, err := h.team.AddMember(c.Context(), actor, c.Params("id"), req.UserID, req.Role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": teamMemberResponse(member)})
}

// RemoveMember handles DELETE /team/:id.
func (h *TeamsHandler) RemoveMember(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.team.RemoveMember(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "removed"}})
}

// List handles GET /organizers/:id/team.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	members, err := h.team.ListMembers(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}

	out := make([]dto.TeamMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, teamMemberResponse(&members[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

func teamMemberResponse(member *domain.TeamMember) dto.TeamMemberResponse {
	return dto.TeamMemberResponse{
		ID:          member.ID,
		OrganizerID: member.OrganizerID,
		UserID:      member.UserID,
		Role:        string(member.Role),
		RoleName:    domain.OrganizerTeamRoleName(member.Role),
		Permissions: domain.OrganizerTeamPermissions[member.Role],
	}
}

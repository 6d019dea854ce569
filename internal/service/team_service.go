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

// TeamService manages an organizer's standing team. Team roles are
// event-independent and separate from per-event staff assignments.
type TeamService struct {
	team       repository.TeamRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewTeamService constructs the service.
func NewTeamService(team repository.TeamRepository, users repository.UserRepository, dispatcher events.Dispatcher) *TeamService {
	return &TeamService{team: team, users: users, dispatcher: dispatcher}
}

// AddMember grants a team role. The organizer (and admins) act as OWNER;
// other callers must hold a team role that may assign the target role.
func (s *TeamService) AddMember(ctx context.Context, actor *domain.User, organizerID, userID, role string) (*domain.TeamMember, error) {
	if !domain.IsOrganizerTeamRole(role) {
		return nil, apperrors.NewValidationError("unknown team role", map[string]any{"role": role})
	}
	targetRole := domain.OrganizerTeamRole(role)

	assignerRole, err := s.assignerRole(ctx, actor, organizerID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAssignOrganizerRole(assignerRole, targetRole) {
		return nil, authz.Denied("assign this team role")
	}

	if existing, err := s.team.GetMember(ctx, organizerID, userID); err == nil && existing != nil {
		return nil, apperrors.NewConflict("already a team member",
			map[string]any{"user_id": userID, "role": existing.Role})
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	member := &domain.TeamMember{
		ID:          uuid.NewString(),
		OrganizerID: organizerID,
		UserID:      userID,
		Role:        targetRole,
		AddedByID:   actor.ID,
	}
	if err := s.team.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, actor, events.EventTeamMemberAdded, events.TeamMemberAddedPayload{
		MemberID:    member.ID,
		OrganizerID: member.OrganizerID,
		UserID:      member.UserID,
		Role:        member.Role,
	})
	return member, nil
}

// RemoveMember revokes a membership. Allowed for the organizer, admins, and
// team members whose role carries delete_team_members.
func (s *TeamService) RemoveMember(ctx context.Context, actor *domain.User, memberID string) error {
	member, err := s.team.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("team member", map[string]any{"member_id": memberID})
		}
		return err
	}

	allowed := authz.IsAdmin(actor) || (actor != nil && actor.ID == member.OrganizerID)
	if !allowed && actor != nil {
		self, err := s.team.GetMember(ctx, member.OrganizerID, actor.ID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if self != nil {
			allowed = domain.HasOrganizerTeamPermission(self.Role, "delete_team_members")
		}
	}
	if !allowed {
		return authz.Denied("remove this team member")
	}

	if err := s.team.Delete(ctx, memberID); err != nil {
		return apperrors.MapError(err)
	}
	s.publish(ctx, actor, events.EventTeamMemberRemoved, events.TeamMemberRemovedPayload{
		MemberID:    member.ID,
		OrganizerID: member.OrganizerID,
	})
	return nil
}

// ListMembers returns the organizer's team.
func (s *TeamService) ListMembers(ctx context.Context, actor *domain.User, organizerID string) ([]domain.TeamMember, error) {
	allowed := authz.IsAdmin(actor) || (actor != nil && actor.ID == organizerID)
	if !allowed && actor != nil {
		self, err := s.team.GetMember(ctx, organizerID, actor.ID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		allowed = self != nil && domain.HasOrganizerTeamPermission(self.Role, "view_team")
	}
	if !allowed {
		return nil, authz.Denied("view this team")
	}

	list, err := s.team.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// MemberPermissions returns the permission strings for the user's team role.
func (s *TeamService) MemberPermissions(ctx context.Context, organizerID, userID string) ([]string, error) {
	member, err := s.team.GetMember(ctx, organizerID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return domain.OrganizerTeamPermissions[member.Role], nil
}

// assignerRole resolves which team role the actor exercises toward the
// organizer's team.
func (s *TeamService) assignerRole(ctx context.Context, actor *domain.User, organizerID string) (domain.OrganizerTeamRole, error) {
	if actor == nil {
		return "", authz.Denied("manage this team")
	}
	if authz.IsAdmin(actor) || actor.ID == organizerID {
		return domain.TeamRoleOwner, nil
	}
	member, err := s.team.GetMember(ctx, organizerID, actor.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", authz.Denied("manage this team")
		}
		return "", err
	}
	return member.Role, nil
}

func (s *TeamService) publish(ctx context.Context, actor *domain.User, eventType events.EventType, payload interface{}) {
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

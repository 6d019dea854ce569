package domain

import "time"

// OrganizerTeamRole enumerates roles on an organizer's standing team. The
// team is event-independent: members help run all of the organizer's events.
// This hierarchy does not nest with EventStaff roles.
type OrganizerTeamRole string

const (
	TeamRoleOwner     OrganizerTeamRole = "OWNER"
	TeamRoleManager   OrganizerTeamRole = "MANAGER"
	TeamRoleStaff     OrganizerTeamRole = "STAFF"
	TeamRoleVolunteer OrganizerTeamRole = "VOLUNTEER"
)

// OrganizerTeamPermissions maps each team role to its fixed permission set.
// The strings are wire values consumed by external clients; do not rename.
var OrganizerTeamPermissions = map[OrganizerTeamRole][]string{
	TeamRoleOwner: {
		"manage_events",
		"manage_team",
		"assign_roles",
		"view_analytics",
		"manage_payments",
		"delete_team_members",
		"view_payouts",
		"manage_settings",
	},
	TeamRoleManager: {
		"manage_events",
		"view_team",
		"assign_staff",
		"assign_volunteers",
		"view_analytics",
		"manage_staff_sales",
	},
	TeamRoleStaff: {
		"view_events",
		"scan_tickets",
		"sell_tickets",
		"view_own_stats",
		"manage_door",
	},
	TeamRoleVolunteer: {
		"view_assigned_events",
		"scan_tickets",
	},
}

// TeamMember is one membership on an organizer's standing team.
type TeamMember struct {
	ID          string
	OrganizerID string
	UserID      string
	Role        OrganizerTeamRole
	AddedByID   string
	CreatedAt   time.Time
}

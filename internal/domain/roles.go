package domain

import "strings"

// DefaultAdminEmails seeds the admin allow-list when no override is
// configured. Kept as wire values; external tooling assumes these entries.
var DefaultAdminEmails = []string{
	"bobbygwatkins@gmail.com",
	"iradwatkins@gmail.com",
}

// AdminList is an immutable, case-insensitive set of admin email addresses.
// Built once at startup from configuration and never mutated afterwards.
type AdminList map[string]struct{}

// NewAdminList lowercases and de-duplicates the given emails.
func NewAdminList(emails []string) AdminList {
	set := make(AdminList, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

// Contains reports whether email is on the allow-list, ignoring case.
func (a AdminList) Contains(email string) bool {
	_, ok := a[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// MapToNewRole normalizes a staff role to the current two-role model.
// STAFF and TEAM_MEMBERS carried manager-like duties; ASSOCIATES were
// sellers. The mapping is total: any unrecognized value falls through to
// SELLER, the least privileged role.
func MapToNewRole(role StaffRole) StaffRole {
	switch role {
	case StaffRoleManager, StaffRoleStaff, StaffRoleTeamMembers:
		return StaffRoleManager
	case StaffRoleSeller, StaffRoleAssociates:
		return StaffRoleSeller
	default:
		return StaffRoleSeller
	}
}

// IsManagerRole reports whether role normalizes to MANAGER.
func IsManagerRole(role StaffRole) bool {
	switch role {
	case StaffRoleManager, StaffRoleStaff, StaffRoleTeamMembers:
		return true
	default:
		return false
	}
}

// IsSellerRole reports whether role normalizes to SELLER.
func IsSellerRole(role StaffRole) bool {
	switch role {
	case StaffRoleSeller, StaffRoleAssociates:
		return true
	default:
		return false
	}
}

// CanAssignOrganizerRole reports whether a team member holding assignerRole
// may grant targetRole. OWNER assigns anything; MANAGER assigns only STAFF
// and VOLUNTEER. The relation is one hop only: a MANAGER-assigned STAFF
// cannot themselves assign anyone.
func CanAssignOrganizerRole(assignerRole, targetRole OrganizerTeamRole) bool {
	switch assignerRole {
	case TeamRoleOwner:
		return targetRole == TeamRoleOwner || targetRole == TeamRoleManager ||
			targetRole == TeamRoleStaff || targetRole == TeamRoleVolunteer
	case TeamRoleManager:
		return targetRole == TeamRoleStaff || targetRole == TeamRoleVolunteer
	default:
		return false
	}
}

// HasOrganizerTeamPermission reports whether role carries the permission.
func HasOrganizerTeamPermission(role OrganizerTeamRole, permission string) bool {
	for _, p := range OrganizerTeamPermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// IsUserRole validates an untrusted string against the platform role set.
func IsUserRole(s string) bool {
	switch UserRole(s) {
	case UserRoleAdmin, UserRoleOrganizer, UserRoleInstructor,
		UserRoleRestaurateur, UserRoleServiceProvider, UserRoleUser:
		return true
	default:
		return false
	}
}

// IsStaffRole validates an untrusted string against the event staff role set,
// legacy values included.
func IsStaffRole(s string) bool {
	switch StaffRole(s) {
	case StaffRoleManager, StaffRoleSeller, StaffRoleStaff,
		StaffRoleTeamMembers, StaffRoleAssociates:
		return true
	default:
		return false
	}
}

// IsRestaurantStaffRole validates an untrusted restaurant staff role string.
func IsRestaurantStaffRole(s string) bool {
	switch RestaurantStaffRole(s) {
	case RestaurantRoleManager, RestaurantRoleStaff:
		return true
	default:
		return false
	}
}

// IsTransferStatus validates an untrusted transfer status string.
func IsTransferStatus(s string) bool {
	switch TransferStatus(s) {
	case TransferStatusPending, TransferStatusAccepted, TransferStatusRejected,
		TransferStatusCancelled, TransferStatusAutoExpired:
		return true
	default:
		return false
	}
}

// IsOrganizerTeamRole validates an untrusted team role string.
func IsOrganizerTeamRole(s string) bool {
	switch OrganizerTeamRole(s) {
	case TeamRoleOwner, TeamRoleManager, TeamRoleStaff, TeamRoleVolunteer:
		return true
	default:
		return false
	}
}

var staffRoleNames = map[StaffRole]string{
	StaffRoleManager:     "Manager",
	StaffRoleSeller:      "Seller",
	StaffRoleStaff:       "Staff (legacy)",
	StaffRoleTeamMembers: "Team Member (legacy)",
	StaffRoleAssociates:  "Associate (legacy)",
}

var staffRoleDescriptions = map[StaffRole]string{
	StaffRoleManager:     "Manages the event team, can scan tickets and assign sellers",
	StaffRoleSeller:      "Sells tickets for the event",
	StaffRoleStaff:       "Legacy role, treated as Manager",
	StaffRoleTeamMembers: "Legacy role, treated as Manager",
	StaffRoleAssociates:  "Legacy role, treated as Seller",
}

// RoleName returns a human-readable name for a staff role, falling back to
// the raw role string when unmapped.
func RoleName(role StaffRole) string {
	if name, ok := staffRoleNames[role]; ok {
		return name
	}
	return string(role)
}

// RoleDescription returns a human-readable description for a staff role.
func RoleDescription(role StaffRole) string {
	if desc, ok := staffRoleDescriptions[role]; ok {
		return desc
	}
	return "Unknown role"
}

var teamRoleNames = map[OrganizerTeamRole]string{
	TeamRoleOwner:     "Owner",
	TeamRoleManager:   "Manager",
	TeamRoleStaff:     "Staff",
	TeamRoleVolunteer: "Volunteer",
}

var teamRoleDescriptions = map[OrganizerTeamRole]string{
	TeamRoleOwner:     "Full control over the team, events, payments and settings",
	TeamRoleManager:   "Runs events and assigns staff and volunteers",
	TeamRoleStaff:     "Works the door: scans and sells tickets",
	TeamRoleVolunteer: "Scans tickets at assigned events",
}

// OrganizerTeamRoleName returns a display name for a team role, falling back
// to the raw role string.
func OrganizerTeamRoleName(role OrganizerTeamRole) string {
	if name, ok := teamRoleNames[role]; ok {
		return name
	}
	return string(role)
}

// OrganizerTeamRoleDescription returns a description for a team role.
func OrganizerTeamRoleDescription(role OrganizerTeamRole) string {
	if desc, ok := teamRoleDescriptions[role]; ok {
		return desc
	}
	return "Unknown role"
}

package domain

import "time"

// StaffRole enumerates per-event staff roles. MANAGER and SELLER are the
// current model; STAFF, TEAM_MEMBERS and ASSOCIATES are legacy values that
// remain permanently valid because historical records carry them.
type StaffRole string

const (
	StaffRoleManager StaffRole = "MANAGER"
	StaffRoleSeller  StaffRole = "SELLER"

	// Legacy roles.
	StaffRoleStaff       StaffRole = "STAFF"
	StaffRoleTeamMembers StaffRole = "TEAM_MEMBERS"
	StaffRoleAssociates  StaffRole = "ASSOCIATES"
)

// CommissionType enumerates how staff sales commission is computed.
type CommissionType string

const (
	CommissionTypePercentage CommissionType = "PERCENTAGE"
	CommissionTypeFixed      CommissionType = "FIXED"
)

// Hierarchy limits for sub-seller delegation chains. A chain starts at
// ROOT_LEVEL and a new delegated record may only be created while the parent
// level is strictly below MAX_DEPTH.
const (
	HierarchyMaxDepth  = 5
	HierarchyRootLevel = 1
)

// EventStaff is one staff assignment scoped to a single event. OrganizerID
// holds the user who owns this record: the event's organizer for root-level
// assignments, the delegating staff member's user for delegated ones.
// AssignedByStaffID points at the parent staff record that delegated this one,
// forming a singly-linked chain bounded by HierarchyMaxDepth.
type EventStaff struct {
	ID                  string
	EventID             string
	StaffUserID         string
	OrganizerID         string
	Role                StaffRole
	IsActive            bool
	CanScan             bool
	CanAssignSubSellers bool
	AssignedByStaffID   *string
	HierarchyLevel      int
	CommissionType      CommissionType
	CommissionRate      float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

package dto

// StaffAssignRequest payload. Role accepts legacy values.
type StaffAssignRequest struct {
	StaffUserID         string  `json:"staff_user_id"`
	Role                string  `json:"role"`
	CanScan             bool    `json:"can_scan"`
	CanAssignSubSellers bool    `json:"can_assign_sub_sellers"`
	CommissionType      string  `json:"commission_type,omitempty"`
	CommissionRate      float64 `json:"commission_rate,omitempty"`
}

// StaffUpdateRequest payload; nil fields are left unchanged.
type StaffUpdateRequest struct {
	CanScan             *bool `json:"can_scan,omitempty"`
	CanAssignSubSellers *bool `json:"can_assign_sub_sellers,omitempty"`
}

// StaffResponse is the public view of a staff assignment. RoleName reflects
// the normalized role; Role keeps the stored (possibly legacy) value.
type StaffResponse struct {
	ID                  string  `json:"id"`
	EventID             string  `json:"event_id"`
	StaffUserID         string  `json:"staff_user_id"`
	Role                string  `json:"role"`
	RoleName            string  `json:"role_name"`
	IsActive            bool    `json:"is_active"`
	CanScan             bool    `json:"can_scan"`
	CanAssignSubSellers bool    `json:"can_assign_sub_sellers"`
	AssignedByStaffID   *string `json:"assigned_by_staff_id,omitempty"`
	HierarchyLevel      int     `json:"hierarchy_level"`
}

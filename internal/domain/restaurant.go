package domain

import "time"

// RestaurantStaffRole enumerates roles inside a restaurant's own staff.
type RestaurantStaffRole string

const (
	RestaurantRoleManager RestaurantStaffRole = "RESTAURANT_MANAGER"
	RestaurantRoleStaff   RestaurantStaffRole = "RESTAURANT_STAFF"
)

// Restaurant is a venue listing owned by a restaurateur account.
type Restaurant struct {
	ID        string
	OwnerID   string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

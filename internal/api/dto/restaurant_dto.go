package dto

// RestaurantCreateRequest payload.
type RestaurantCreateRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantUpdateRequest payload; nil fields are left unchanged.
type RestaurantUpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// RestaurantResponse is the public view of a restaurant.
type RestaurantResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

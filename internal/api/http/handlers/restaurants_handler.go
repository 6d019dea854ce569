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

// RestaurantsHandler exposes restaurant listing endpoints.
type RestaurantsHandler struct {
	restaurants *service.RestaurantService
}

// NewRestaurantsHandler constructs handler.
func NewRestaurantsHandler(restaurants *service.RestaurantService) *RestaurantsHandler {
	return &RestaurantsHandler{restaurants: restaurants}
}

// Create handles POST /restaurants.
func (h *RestaurantsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.RestaurantCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	restaurant, err := h.restaurants.CreateRestaurant(c.Context(), actor, req.Name, req.Address)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": restaurantResponse(restaurant)})
}

// Update handles PATCH /restaurants/:id.
func (h *RestaurantsHandler) Update(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.RestaurantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	restaurant, err := h.restaurants.UpdateRestaurant(c.Context(), actor, c.Params("id"), req.Name, req.Address)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": restaurantResponse(restaurant)})
}

func restaurantResponse(restaurant *domain.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{
		ID:      restaurant.ID,
		OwnerID: restaurant.OwnerID,
		Name:    restaurant.Name,
		Address: restaurant.Address,
	}
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/repository"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// RestaurantService manages restaurant listings.
type RestaurantService struct {
	restaurants repository.RestaurantRepository
}

// NewRestaurantService constructs the service.
func NewRestaurantService(restaurants repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants}
}

// CreateRestaurant registers a listing owned by the actor.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, actor *domain.User, name, address string) (*domain.Restaurant, error) {
	if !authz.IsRestaurateur(actor) {
		return nil, authz.Denied("create restaurant listings")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}

	restaurant := &domain.Restaurant{
		ID:      uuid.NewString(),
		OwnerID: actor.ID,
		Name:    name,
		Address: address,
	}
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return nil, apperrors.MapError(err)
	}
	return restaurant, nil
}

// UpdateRestaurant applies changes after the ownership check.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, actor *domain.User, restaurantID string, name, address *string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("restaurant", map[string]any{"restaurant_id": restaurantID})
		}
		return nil, err
	}

	if !authz.IsRestaurantOwner(actor, restaurant) {
		return nil, authz.Denied("manage this restaurant")
	}

	if name != nil {
		restaurant.Name = *name
	}
	if address != nil {
		restaurant.Address = *address
	}
	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, apperrors.MapError(err)
	}
	return restaurant, nil
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/service"
)

func TestCreateRestaurant(t *testing.T) {
	t.Parallel()

	svc := service.NewRestaurantService(newFakeRestaurantRepo())
	ctx := context.Background()
	owner := &domain.User{ID: "u1", Role: domain.UserRoleRestaurateur}

	restaurant, err := svc.CreateRestaurant(ctx, owner, "The Corner Grill", "12 Main St")
	require.NoError(t, err)
	require.Equal(t, owner.ID, restaurant.OwnerID)

	_, err = svc.CreateRestaurant(ctx, &domain.User{ID: "u2", Role: domain.UserRoleUser}, "Nope", "")
	requireCode(t, err, "FORBIDDEN")

	_, err = svc.CreateRestaurant(ctx, owner, "", "")
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestUpdateRestaurant(t *testing.T) {
	t.Parallel()

	existing := &domain.Restaurant{ID: "r1", OwnerID: "u1", Name: "Old Name"}
	svc := service.NewRestaurantService(newFakeRestaurantRepo(existing))
	ctx := context.Background()

	name := "New Name"
	updated, err := svc.UpdateRestaurant(ctx, &domain.User{ID: "u1", Role: domain.UserRoleRestaurateur}, "r1", &name, nil)
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)

	// Admins may edit any listing.
	address := "45 Side St"
	updated, err = svc.UpdateRestaurant(ctx, &domain.User{ID: "adm", Role: domain.UserRoleAdmin}, "r1", nil, &address)
	require.NoError(t, err)
	require.Equal(t, "45 Side St", updated.Address)

	_, err = svc.UpdateRestaurant(ctx, &domain.User{ID: "u2", Role: domain.UserRoleRestaurateur}, "r1", &name, nil)
	requireCode(t, err, "FORBIDDEN")

	_, err = svc.UpdateRestaurant(ctx, &domain.User{ID: "u1", Role: domain.UserRoleRestaurateur}, "no-such", &name, nil)
	requireCode(t, err, "NOT_FOUND")
}

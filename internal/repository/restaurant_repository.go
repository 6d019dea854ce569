package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepperslife/events-service/internal/domain"
)

// RestaurantRepository handles persistence for restaurant listings.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
}

type restaurantRepository struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository instantiates the repository.
func NewRestaurantRepository(pool *pgxpool.Pool) RestaurantRepository {
	return &restaurantRepository{pool: pool}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        INSERT INTO restaurants (id, owner_id, name, address)
        VALUES ($1,$2,$3,$4)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		restaurant.ID,
		restaurant.OwnerID,
		restaurant.Name,
		restaurant.Address,
	).Scan(&restaurant.CreatedAt, &restaurant.UpdatedAt)
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	const query = `
        UPDATE restaurants
        SET name=$1, address=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		restaurant.Name,
		restaurant.Address,
		restaurant.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	const query = `
        SELECT id, owner_id, name, address, created_at, updated_at
        FROM restaurants WHERE id=$1`

	var restaurant domain.Restaurant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.OwnerID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

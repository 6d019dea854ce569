package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepperslife/events-service/internal/domain"
)

// EventRepository handles persistence for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string, limit, offset int) ([]domain.Event, error)
}

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository instantiates the repository.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
        INSERT INTO events (id, organizer_id, name, description, type, status, starts_at, ends_at, location)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		event.ID,
		event.OrganizerID,
		event.Name,
		event.Description,
		event.Type,
		event.Status,
		event.StartsAt,
		event.EndsAt,
		event.Location,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
        UPDATE events
        SET name=$1, description=$2, type=$3, status=$4, starts_at=$5, ends_at=$6, location=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		event.Name,
		event.Description,
		event.Type,
		event.Status,
		event.StartsAt,
		event.EndsAt,
		event.Location,
		event.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	const query = `
        SELECT id, organizer_id, name, description, type, status, starts_at, ends_at, location, created_at, updated_at
        FROM events WHERE id=$1`

	var event domain.Event
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.OrganizerID,
		&event.Name,
		&event.Description,
		&event.Type,
		&event.Status,
		&event.StartsAt,
		&event.EndsAt,
		&event.Location,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListByOrganizer(ctx context.Context, organizerID string, limit, offset int) ([]domain.Event, error) {
	const query = `
        SELECT id, organizer_id, name, description, type, status, starts_at, ends_at, location, created_at, updated_at
        FROM events WHERE organizer_id=$1
        ORDER BY starts_at DESC
        LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, query, organizerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.OrganizerID,
			&event.Name,
			&event.Description,
			&event.Type,
			&event.Status,
			&event.StartsAt,
			&event.EndsAt,
			&event.Location,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

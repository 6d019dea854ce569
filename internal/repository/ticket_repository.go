package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepperslife/events-service/internal/domain"
)

// TicketRepository handles persistence for issued tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (id, event_id, attendee_email, attendee_name, status, sold_by_staff_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ticket.ID,
		ticket.EventID,
		ticket.AttendeeEmail,
		ticket.AttendeeName,
		ticket.Status,
		ticket.SoldByStaffID,
	).Scan(&ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets
        SET attendee_email=$1, attendee_name=$2, status=$3, scanned_at=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		ticket.AttendeeEmail,
		ticket.AttendeeName,
		ticket.Status,
		ticket.ScannedAt,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, event_id, attendee_email, attendee_name, status, sold_by_staff_id, scanned_at, created_at, updated_at
        FROM tickets WHERE id=$1`

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.AttendeeEmail,
		&ticket.AttendeeName,
		&ticket.Status,
		&ticket.SoldByStaffID,
		&ticket.ScannedAt,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByEvent(ctx context.Context, eventID string, limit, offset int) ([]domain.Ticket, error) {
	const query = `
        SELECT id, event_id, attendee_email, attendee_name, status, sold_by_staff_id, scanned_at, created_at, updated_at
        FROM tickets WHERE event_id=$1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, query, eventID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.EventID,
			&ticket.AttendeeEmail,
			&ticket.AttendeeName,
			&ticket.Status,
			&ticket.SoldByStaffID,
			&ticket.ScannedAt,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

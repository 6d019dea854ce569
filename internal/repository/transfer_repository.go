package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepperslife/events-service/internal/domain"
)

const transferColumns = `id, ticket_id, event_id, from_user_id, to_email, status,
        reminder_sent_at, expires_at, created_at, updated_at`

// TransferRepository handles persistence for ticket transfers.
type TransferRepository interface {
	Create(ctx context.Context, transfer *domain.TicketTransfer) error
	Update(ctx context.Context, transfer *domain.TicketTransfer) error
	GetByID(ctx context.Context, id string) (*domain.TicketTransfer, error)
	// ListPendingExpired returns PENDING transfers whose expiry has passed.
	ListPendingExpired(ctx context.Context, now time.Time, limit int) ([]domain.TicketTransfer, error)
	// ListPendingForReminder returns PENDING transfers old enough for a
	// reminder that have not had one sent yet.
	ListPendingForReminder(ctx context.Context, cutoff time.Time, limit int) ([]domain.TicketTransfer, error)
}

type transferRepository struct {
	pool *pgxpool.Pool
}

// NewTransferRepository instantiates the repository.
func NewTransferRepository(pool *pgxpool.Pool) TransferRepository {
	return &transferRepository{pool: pool}
}

func (r *transferRepository) Create(ctx context.Context, transfer *domain.TicketTransfer) error {
	const query = `
        INSERT INTO ticket_transfers (id, ticket_id, event_id, from_user_id, to_email, status, expires_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		transfer.ID,
		transfer.TicketID,
		transfer.EventID,
		transfer.FromUserID,
		transfer.ToEmail,
		transfer.Status,
		transfer.ExpiresAt,
	).Scan(&transfer.CreatedAt, &transfer.UpdatedAt)
}

func (r *transferRepository) Update(ctx context.Context, transfer *domain.TicketTransfer) error {
	const query = `
        UPDATE ticket_transfers
        SET status=$1, reminder_sent_at=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		transfer.Status,
		transfer.ReminderSentAt,
		transfer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *transferRepository) GetByID(ctx context.Context, id string) (*domain.TicketTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM ticket_transfers WHERE id=$1`
	return scanTransfer(r.pool.QueryRow(ctx, query, id))
}

func (r *transferRepository) ListPendingExpired(ctx context.Context, now time.Time, limit int) ([]domain.TicketTransfer, error) {
	query := `SELECT ` + transferColumns + `
        FROM ticket_transfers
        WHERE status=$1 AND expires_at <= $2
        ORDER BY expires_at
        LIMIT $3`
	return r.list(ctx, query, domain.TransferStatusPending, now, limitOrDefault(limit))
}

func (r *transferRepository) ListPendingForReminder(ctx context.Context, cutoff time.Time, limit int) ([]domain.TicketTransfer, error) {
	query := `SELECT ` + transferColumns + `
        FROM ticket_transfers
        WHERE status=$1 AND created_at <= $2 AND reminder_sent_at IS NULL
        ORDER BY created_at
        LIMIT $3`
	return r.list(ctx, query, domain.TransferStatusPending, cutoff, limitOrDefault(limit))
}

func (r *transferRepository) list(ctx context.Context, query string, args ...any) ([]domain.TicketTransfer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketTransfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *transfer)
	}
	return result, rows.Err()
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 100
	}
	return limit
}

func scanTransfer(row pgx.Row) (*domain.TicketTransfer, error) {
	var transfer domain.TicketTransfer
	if err := row.Scan(
		&transfer.ID,
		&transfer.TicketID,
		&transfer.EventID,
		&transfer.FromUserID,
		&transfer.ToEmail,
		&transfer.Status,
		&transfer.ReminderSentAt,
		&transfer.ExpiresAt,
		&transfer.CreatedAt,
		&transfer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &transfer, nil
}

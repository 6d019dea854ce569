package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepperslife/events-service/internal/domain"
)

// TeamRepository handles persistence for organizer team memberships.
type TeamRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	GetMember(ctx context.Context, organizerID, userID string) (*domain.TeamMember, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]domain.TeamMember, error)
}

type teamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository instantiates the repository.
func NewTeamRepository(pool *pgxpool.Pool) TeamRepository {
	return &teamRepository{pool: pool}
}

func (r *teamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO team_members (id, organizer_id, user_id, role, added_by_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		member.ID,
		member.OrganizerID,
		member.UserID,
		member.Role,
		member.AddedByID,
	).Scan(&member.CreatedAt)
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	const query = `
        SELECT id, organizer_id, user_id, role, added_by_id, created_at
        FROM team_members WHERE id=$1`
	return scanTeamMember(r.pool.QueryRow(ctx, query, id))
}

func (r *teamRepository) GetMember(ctx context.Context, organizerID, userID string) (*domain.TeamMember, error) {
	const query = `
        SELECT id, organizer_id, user_id, role, added_by_id, created_at
        FROM team_members WHERE organizer_id=$1 AND user_id=$2`
	return scanTeamMember(r.pool.QueryRow(ctx, query, organizerID, userID))
}

func (r *teamRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]domain.TeamMember, error) {
	const query = `
        SELECT id, organizer_id, user_id, role, added_by_id, created_at
        FROM team_members WHERE organizer_id=$1
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMember
	for rows.Next() {
		member, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *member)
	}
	return result, rows.Err()
}

func scanTeamMember(row pgx.Row) (*domain.TeamMember, error) {
	var member domain.TeamMember
	if err := row.Scan(
		&member.ID,
		&member.OrganizerID,
		&member.UserID,
		&member.Role,
		&member.AddedByID,
		&member.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

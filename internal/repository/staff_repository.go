package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepperslife/events-service/internal/domain"
)

const staffColumns = `id, event_id, staff_user_id, organizer_id, role, is_active,
        can_scan, can_assign_sub_sellers, assigned_by_staff_id, hierarchy_level,
        commission_type, commission_rate, created_at, updated_at`

// StaffRepository handles persistence for per-event staff assignments.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.EventStaff) error
	Update(ctx context.Context, staff *domain.EventStaff) error
	GetByID(ctx context.Context, id string) (*domain.EventStaff, error)
	// FindActive returns the active assignment for (eventID, userID). The
	// is_active filter happens here, in the query, so inactive records never
	// reach the authorization layer.
	FindActive(ctx context.Context, eventID, userID string) (*domain.EventStaff, error)
	ListByEvent(ctx context.Context, eventID string, activeOnly bool) ([]domain.EventStaff, error)
	Deactivate(ctx context.Context, id string) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.EventStaff) error {
	const query = `
        INSERT INTO event_staff (id, event_id, staff_user_id, organizer_id, role, is_active,
            can_scan, can_assign_sub_sellers, assigned_by_staff_id, hierarchy_level,
            commission_type, commission_rate)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.ID,
		staff.EventID,
		staff.StaffUserID,
		staff.OrganizerID,
		staff.Role,
		staff.IsActive,
		staff.CanScan,
		staff.CanAssignSubSellers,
		staff.AssignedByStaffID,
		staff.HierarchyLevel,
		staff.CommissionType,
		staff.CommissionRate,
	).Scan(&staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.EventStaff) error {
	const query = `
        UPDATE event_staff
        SET role=$1, is_active=$2, can_scan=$3, can_assign_sub_sellers=$4,
            commission_type=$5, commission_rate=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Role,
		staff.IsActive,
		staff.CanScan,
		staff.CanAssignSubSellers,
		staff.CommissionType,
		staff.CommissionRate,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.EventStaff, error) {
	query := `SELECT ` + staffColumns + ` FROM event_staff WHERE id=$1`
	return scanStaff(r.pool.QueryRow(ctx, query, id))
}

func (r *staffRepository) FindActive(ctx context.Context, eventID, userID string) (*domain.EventStaff, error) {
	query := `SELECT ` + staffColumns + `
        FROM event_staff
        WHERE event_id=$1 AND staff_user_id=$2 AND is_active=TRUE`
	return scanStaff(r.pool.QueryRow(ctx, query, eventID, userID))
}

func (r *staffRepository) ListByEvent(ctx context.Context, eventID string, activeOnly bool) ([]domain.EventStaff, error) {
	query := `SELECT ` + staffColumns + ` FROM event_staff WHERE event_id=$1`
	if activeOnly {
		query += ` AND is_active=TRUE`
	}
	query += ` ORDER BY hierarchy_level, created_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EventStaff
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE event_staff SET is_active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStaff(row pgx.Row) (*domain.EventStaff, error) {
	var staff domain.EventStaff
	if err := row.Scan(
		&staff.ID,
		&staff.EventID,
		&staff.StaffUserID,
		&staff.OrganizerID,
		&staff.Role,
		&staff.IsActive,
		&staff.CanScan,
		&staff.CanAssignSubSellers,
		&staff.AssignedByStaffID,
		&staff.HierarchyLevel,
		&staff.CommissionType,
		&staff.CommissionRate,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

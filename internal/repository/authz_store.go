package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
)

// authzStore adapts the repositories to the authz.Store contract: a lookup
// that finds no row yields (nil, nil) so the checker treats it as a denial
// rather than an error.
type authzStore struct {
	events EventRepository
	staff  StaffRepository
}

// NewAuthzStore builds the read-only store view the permission checker uses.
func NewAuthzStore(events EventRepository, staff StaffRepository) authz.Store {
	return &authzStore{events: events, staff: staff}
}

func (s *authzStore) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	return noRowsAsNil(event, err)
}

func (s *authzStore) GetStaff(ctx context.Context, id string) (*domain.EventStaff, error) {
	staff, err := s.staff.GetByID(ctx, id)
	return noRowsAsNil(staff, err)
}

func (s *authzStore) FindActiveStaff(ctx context.Context, eventID, userID string) (*domain.EventStaff, error) {
	staff, err := s.staff.FindActive(ctx, eventID, userID)
	return noRowsAsNil(staff, err)
}

func noRowsAsNil[T any](entity *T, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

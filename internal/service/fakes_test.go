package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stepperslife/events-service/internal/domain"
)

// In-memory repositories for the service tests. Missing records surface as
// pgx.ErrNoRows, matching the pool-backed implementations.

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*domain.Event
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[string]*domain.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) ListByOrganizer(_ context.Context, organizerID string, _, _ int) ([]domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Event
	for _, e := range r.events {
		if e.OrganizerID == organizerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeStaffRepo struct {
	mu    sync.Mutex
	staff map[string]*domain.EventStaff
}

func newFakeStaffRepo(staff ...*domain.EventStaff) *fakeStaffRepo {
	r := &fakeStaffRepo{staff: make(map[string]*domain.EventStaff)}
	for _, s := range staff {
		r.staff[s.ID] = s
	}
	return r
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.EventStaff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *domain.EventStaff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.staff[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.EventStaff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff, ok := r.staff[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *staff
	return &copied, nil
}

func (r *fakeStaffRepo) FindActive(_ context.Context, eventID, userID string) (*domain.EventStaff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.staff {
		if s.EventID == eventID && s.StaffUserID == userID && s.IsActive {
			copied := *s
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeStaffRepo) ListByEvent(_ context.Context, eventID string, activeOnly bool) ([]domain.EventStaff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.EventStaff
	for _, s := range r.staff {
		if s.EventID != eventID {
			continue
		}
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStaffRepo) Deactivate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff, ok := r.staff[id]
	if !ok {
		return pgx.ErrNoRows
	}
	staff.IsActive = false
	return nil
}

type fakeRestaurantRepo struct {
	mu          sync.Mutex
	restaurants map[string]*domain.Restaurant
}

func newFakeRestaurantRepo(restaurants ...*domain.Restaurant) *fakeRestaurantRepo {
	r := &fakeRestaurantRepo{restaurants: make(map[string]*domain.Restaurant)}
	for _, rest := range restaurants {
		r.restaurants[rest.ID] = rest
	}
	return r
}

func (r *fakeRestaurantRepo) Create(_ context.Context, restaurant *domain.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *fakeRestaurantRepo) Update(_ context.Context, restaurant *domain.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.restaurants[restaurant.ID] = restaurant
	return nil
}

func (r *fakeRestaurantRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *restaurant
	return &copied, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeTeamRepo struct {
	mu      sync.Mutex
	members map[string]*domain.TeamMember
}

func newFakeTeamRepo(members ...*domain.TeamMember) *fakeTeamRepo {
	r := &fakeTeamRepo{members: make(map[string]*domain.TeamMember)}
	for _, m := range members {
		r.members[m.ID] = m
	}
	return r
}

func (r *fakeTeamRepo) Create(_ context.Context, member *domain.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[member.ID] = member
	return nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.members, id)
	return nil
}

func (r *fakeTeamRepo) GetByID(_ context.Context, id string) (*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *member
	return &copied, nil
}

func (r *fakeTeamRepo) GetMember(_ context.Context, organizerID, userID string) (*domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.OrganizerID == organizerID && m.UserID == userID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTeamRepo) ListByOrganizer(_ context.Context, organizerID string) ([]domain.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TeamMember
	for _, m := range r.members {
		if m.OrganizerID == organizerID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[string]*domain.Ticket
}

func newFakeTicketRepo(tickets ...*domain.Ticket) *fakeTicketRepo {
	r := &fakeTicketRepo{tickets: make(map[string]*domain.Ticket)}
	for _, t := range tickets {
		r.tickets[t.ID] = t
	}
	return r
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *fakeTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (r *fakeTicketRepo) ListByEvent(_ context.Context, eventID string, _, _ int) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Ticket
	for _, t := range r.tickets {
		if t.EventID == eventID {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeTransferRepo struct {
	mu        sync.Mutex
	transfers map[string]*domain.TicketTransfer
}

func newFakeTransferRepo(transfers ...*domain.TicketTransfer) *fakeTransferRepo {
	r := &fakeTransferRepo{transfers: make(map[string]*domain.TicketTransfer)}
	for _, t := range transfers {
		r.transfers[t.ID] = t
	}
	return r
}

func (r *fakeTransferRepo) Create(_ context.Context, transfer *domain.TicketTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transfers[transfer.ID] = transfer
	return nil
}

func (r *fakeTransferRepo) Update(_ context.Context, transfer *domain.TicketTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transfers[transfer.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *transfer
	r.transfers[transfer.ID] = &copied
	return nil
}

func (r *fakeTransferRepo) GetByID(_ context.Context, id string) (*domain.TicketTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	transfer, ok := r.transfers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *transfer
	return &copied, nil
}

func (r *fakeTransferRepo) ListPendingExpired(_ context.Context, now time.Time, limit int) ([]domain.TicketTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TicketTransfer
	for _, t := range r.transfers {
		if t.Status == domain.TransferStatusPending && !t.ExpiresAt.After(now) {
			out = append(out, *t)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeTransferRepo) ListPendingForReminder(_ context.Context, cutoff time.Time, limit int) ([]domain.TicketTransfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TicketTransfer
	for _, t := range r.transfers {
		if t.Status == domain.TransferStatusPending && t.ReminderSentAt == nil && !t.CreatedAt.After(cutoff) {
			out = append(out, *t)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

// fakeStore serves records from maps. Missing keys come back as (nil, nil),
// matching the store contract.
type fakeStore struct {
	events map[string]*domain.Event
	staff  map[string]*domain.EventStaff
	err    error
}

func (s *fakeStore) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.events[id], nil
}

func (s *fakeStore) GetStaff(_ context.Context, id string) (*domain.EventStaff, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.staff[id], nil
}

func (s *fakeStore) FindActiveStaff(_ context.Context, eventID, userID string) (*domain.EventStaff, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, st := range s.staff {
		if st.EventID == eventID && st.StaffUserID == userID && st.IsActive {
			return st, nil
		}
	}
	return nil, nil
}

func strPtr(s string) *string { return &s }

// newDelegationFixture builds an organizer-owned event with a two-hop
// delegation chain: organizer -> s1 -> s2.
func newDelegationFixture() (*fakeStore, *domain.User, *domain.EventStaff, *domain.EventStaff) {
	organizer := &domain.User{ID: "org-1", Email: "org@example.com", Role: domain.UserRoleOrganizer}
	event := &domain.Event{ID: "evt-1", OrganizerID: organizer.ID, Type: domain.EventTypeTicketedEvent}

	s1 := &domain.EventStaff{
		ID: "staff-1", EventID: event.ID, StaffUserID: "user-s1", OrganizerID: organizer.ID,
		Role: domain.StaffRoleTeamMembers, IsActive: true, CanAssignSubSellers: true,
		HierarchyLevel: domain.HierarchyRootLevel,
	}
	// Delegated records carry the delegator's user id in the organizer field,
	// so the event organizer is not a direct manager of them.
	s2 := &domain.EventStaff{
		ID: "staff-2", EventID: event.ID, StaffUserID: "user-s2", OrganizerID: s1.StaffUserID,
		Role: domain.StaffRoleAssociates, IsActive: true,
		AssignedByStaffID: strPtr(s1.ID), HierarchyLevel: 2,
	}

	store := &fakeStore{
		events: map[string]*domain.Event{event.ID: event},
		staff:  map[string]*domain.EventStaff{s1.ID: s1, s2.ID: s2},
	}
	return store, organizer, s1, s2
}

func TestCanManageStaff(t *testing.T) {
	t.Parallel()

	store, organizer, s1, s2 := newDelegationFixture()
	checker := authz.NewChecker(store)
	ctx := context.Background()

	admin := &domain.User{ID: "adm-1", Role: domain.UserRoleAdmin}
	s1User := &domain.User{ID: s1.StaffUserID, Role: domain.UserRoleUser}
	s2User := &domain.User{ID: s2.StaffUserID, Role: domain.UserRoleUser}
	stranger := &domain.User{ID: "other", Role: domain.UserRoleUser}

	// Third hop below s2, delegated by s2.
	s3 := &domain.EventStaff{
		ID: "staff-3", EventID: "evt-1", StaffUserID: "user-s3", OrganizerID: s2.StaffUserID,
		Role: domain.StaffRoleAssociates, IsActive: true,
		AssignedByStaffID: strPtr(s2.ID), HierarchyLevel: 3,
	}
	store.staff[s3.ID] = s3

	tests := []struct {
		name  string
		user  *domain.User
		staff *domain.EventStaff
		want  bool
	}{
		{"admin manages anyone", admin, s2, true},
		{"organizer manages root staff", organizer, s1, true},
		{"organizer does not manage delegated staff", organizer, s2, false},
		{"parent manages direct child", s1User, s2, true},
		{"grandparent does not manage two hops down", s1User, s3, false},
		{"child does not manage parent", s2User, s1, false},
		{"stranger denied", stranger, s2, false},
		{"nil staff denied", organizer, nil, false},
		{"nil user denied", nil, s2, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := checker.CanManageStaff(ctx, test.user, test.staff)
			require.NoError(t, err)
			require.Equal(t, test.want, ok)
		})
	}
}

func TestCanManageStaffDanglingParent(t *testing.T) {
	t.Parallel()

	store, _, _, s2 := newDelegationFixture()
	delete(store.staff, "staff-1")
	s2.OrganizerID = "someone-else"
	checker := authz.NewChecker(store)

	s1User := &domain.User{ID: "user-s1", Role: domain.UserRoleUser}
	ok, err := checker.CanManageStaff(context.Background(), s1User, s2)
	require.NoError(t, err)
	require.False(t, ok, "a missing parent record denies, it is not an error")
}

func TestCanScanTickets(t *testing.T) {
	t.Parallel()

	organizer := &domain.User{ID: "org-1", Role: domain.UserRoleOrganizer}
	event := &domain.Event{ID: "evt-1", OrganizerID: organizer.ID}

	mkStaff := func(id, userID string, role domain.StaffRole, canScan, active bool) *domain.EventStaff {
		return &domain.EventStaff{
			ID: id, EventID: event.ID, StaffUserID: userID, OrganizerID: organizer.ID,
			Role: role, IsActive: active, CanScan: canScan, HierarchyLevel: 1,
		}
	}

	store := &fakeStore{
		events: map[string]*domain.Event{event.ID: event},
		staff: map[string]*domain.EventStaff{
			"a": mkStaff("a", "staff-user", domain.StaffRoleStaff, false, true),
			"b": mkStaff("b", "tm-scan", domain.StaffRoleTeamMembers, true, true),
			"c": mkStaff("c", "tm-noscan", domain.StaffRoleTeamMembers, false, true),
			"d": mkStaff("d", "assoc-scan", domain.StaffRoleAssociates, true, true),
			"e": mkStaff("e", "assoc-noscan", domain.StaffRoleAssociates, false, true),
			"f": mkStaff("f", "inactive", domain.StaffRoleStaff, true, false),
		},
	}
	checker := authz.NewChecker(store)
	ctx := context.Background()

	mkUser := func(id string) *domain.User { return &domain.User{ID: id, Role: domain.UserRoleUser} }

	tests := []struct {
		name string
		user *domain.User
		want bool
	}{
		{"organizer scans", organizer, true},
		{"admin scans", &domain.User{ID: "adm", Role: domain.UserRoleAdmin}, true},
		{"staff role scans without flag", mkUser("staff-user"), true},
		{"team member with flag scans", mkUser("tm-scan"), true},
		{"team member without flag denied", mkUser("tm-noscan"), false},
		{"associate with flag scans", mkUser("assoc-scan"), true},
		{"associate without flag denied", mkUser("assoc-noscan"), false},
		{"inactive assignment invisible", mkUser("inactive"), false},
		{"no assignment denied", mkUser("nobody"), false},
		{"nil user denied", nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := checker.CanScanTickets(ctx, test.user, event.ID)
			require.NoError(t, err)
			require.Equal(t, test.want, ok)
		})
	}
}

func TestCanSellTickets(t *testing.T) {
	t.Parallel()

	organizer := &domain.User{ID: "org-1", Role: domain.UserRoleOrganizer}
	event := &domain.Event{ID: "evt-1", OrganizerID: organizer.ID}

	mkStaff := func(id, userID string, role domain.StaffRole, canScan bool) *domain.EventStaff {
		return &domain.EventStaff{
			ID: id, EventID: event.ID, StaffUserID: userID, OrganizerID: organizer.ID,
			Role: role, IsActive: true, CanScan: canScan, HierarchyLevel: 1,
		}
	}

	store := &fakeStore{
		events: map[string]*domain.Event{event.ID: event},
		staff: map[string]*domain.EventStaff{
			"a": mkStaff("a", "tm", domain.StaffRoleTeamMembers, false),
			"b": mkStaff("b", "assoc", domain.StaffRoleAssociates, false),
			"c": mkStaff("c", "staff-scan", domain.StaffRoleStaff, true),
			"d": mkStaff("d", "staff-noscan", domain.StaffRoleStaff, false),
		},
	}
	checker := authz.NewChecker(store)
	ctx := context.Background()

	mkUser := func(id string) *domain.User { return &domain.User{ID: id, Role: domain.UserRoleUser} }

	tests := []struct {
		name string
		user *domain.User
		want bool
	}{
		{"organizer sells", organizer, true},
		{"team member sells by role", mkUser("tm"), true},
		{"associate sells by role", mkUser("assoc"), true},
		{"staff with scan flag sells", mkUser("staff-scan"), true},
		{"staff without scan flag denied", mkUser("staff-noscan"), false},
		{"no assignment denied", mkUser("nobody"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ok, err := checker.CanSellTickets(ctx, test.user, event.ID)
			require.NoError(t, err)
			require.Equal(t, test.want, ok)
		})
	}
}

func TestCanTransferTickets(t *testing.T) {
	t.Parallel()

	store, organizer, s1, s2 := newDelegationFixture()
	checker := authz.NewChecker(store)
	ctx := context.Background()

	ok, err := checker.CanTransferTickets(ctx, organizer, "evt-1")
	require.NoError(t, err)
	require.True(t, ok)

	for _, userID := range []string{s1.StaffUserID, s2.StaffUserID} {
		ok, err = checker.CanTransferTickets(ctx, &domain.User{ID: userID, Role: domain.UserRoleUser}, "evt-1")
		require.NoError(t, err)
		require.True(t, ok, "any active staff may manage transfers")
	}

	ok, err = checker.CanTransferTickets(ctx, &domain.User{ID: "nobody", Role: domain.UserRoleUser}, "evt-1")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = checker.CanTransferTickets(ctx, organizer, "no-such-event")
	require.NoError(t, err)
	require.False(t, ok, "a missing event denies, it is not an error")
}

func TestOrganizerOnlyChecks(t *testing.T) {
	t.Parallel()

	store, organizer, s1, _ := newDelegationFixture()
	checker := authz.NewChecker(store)
	ctx := context.Background()

	staffUser := &domain.User{ID: s1.StaffUserID, Role: domain.UserRoleUser}
	admin := &domain.User{ID: "adm", Role: domain.UserRoleAdmin}

	type check func(context.Context, *domain.User, string) (bool, error)
	checks := map[string]check{
		"analytics": checker.CanViewAnalytics,
		"modify":    checker.CanModifyEvent,
		"delete":    checker.CanDeleteEvent,
	}

	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			ok, err := fn(ctx, organizer, "evt-1")
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = fn(ctx, admin, "evt-1")
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = fn(ctx, staffUser, "evt-1")
			require.NoError(t, err)
			require.False(t, ok, "staff assignments grant no organizer-level access")

			ok, err = fn(ctx, organizer, "no-such-event")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	t.Parallel()

	infra := errors.New("connection reset")
	checker := authz.NewChecker(&fakeStore{err: infra})
	ctx := context.Background()
	user := &domain.User{ID: "u1", Role: domain.UserRoleOrganizer}

	_, err := checker.CanScanTickets(ctx, user, "evt-1")
	require.ErrorIs(t, err, infra)

	_, err = checker.CanSellTickets(ctx, user, "evt-1")
	require.ErrorIs(t, err, infra)

	_, err = checker.CanTransferTickets(ctx, user, "evt-1")
	require.ErrorIs(t, err, infra)

	err = checker.RequireEventOrganizer(ctx, user, "evt-1")
	require.ErrorIs(t, err, infra)
}

func TestDenied(t *testing.T) {
	t.Parallel()

	err := authz.Denied("scan tickets for this event")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "FORBIDDEN", domainErr.Code)
	require.Equal(t,
		"You don't have permission to scan tickets for this event. Please contact an administrator if you believe this is an error.",
		domainErr.Message)
}

func TestRequireHelpers(t *testing.T) {
	t.Parallel()

	store, organizer, s1, s2 := newDelegationFixture()
	checker := authz.NewChecker(store)
	ctx := context.Background()

	require.NoError(t, authz.RequireAdmin(&domain.User{Role: domain.UserRoleAdmin}))
	require.Error(t, authz.RequireAdmin(organizer))
	require.Error(t, authz.RequireAdmin(nil))

	require.NoError(t, authz.RequireOrganizer(organizer))
	require.Error(t, authz.RequireOrganizer(&domain.User{Role: domain.UserRoleUser}))

	require.NoError(t, checker.RequireEventOrganizer(ctx, organizer, "evt-1"))
	require.Error(t, checker.RequireEventOrganizer(ctx, &domain.User{ID: "x", Role: domain.UserRoleUser}, "evt-1"))
	require.Error(t, checker.RequireEventOrganizer(ctx, organizer, "no-such-event"))

	s1User := &domain.User{ID: s1.StaffUserID, Role: domain.UserRoleUser}
	require.NoError(t, checker.RequireCanManageStaff(ctx, s1User, s2.ID))
	require.Error(t, checker.RequireCanManageStaff(ctx, s1User, "no-such-staff"))

	err := checker.RequireCanManageStaff(ctx, &domain.User{ID: "stranger", Role: domain.UserRoleUser}, s2.ID)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "FORBIDDEN", domainErr.Code)
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stepperslife/events-service/internal/authz"
	"github.com/stepperslife/events-service/internal/domain"
	"github.com/stepperslife/events-service/internal/repository"
	"github.com/stepperslife/events-service/internal/service"
	apperrors "github.com/stepperslife/events-service/pkg/util/errorutil"
)

func strPtr(s string) *string { return &s }

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, code, domainErr.Code)
}

func newStaffFixture(staff ...*domain.EventStaff) (*service.StaffService, *fakeStaffRepo, *domain.User) {
	organizer := &domain.User{ID: "org-1", Email: "org@example.com", Role: domain.UserRoleOrganizer}
	eventRepo := newFakeEventRepo(&domain.Event{ID: "evt-1", OrganizerID: organizer.ID, Type: domain.EventTypeTicketedEvent})
	staffRepo := newFakeStaffRepo(staff...)
	checker := authz.NewChecker(repository.NewAuthzStore(eventRepo, staffRepo))
	return service.NewStaffService(eventRepo, staffRepo, checker, nil), staffRepo, organizer
}

func TestAssignStaff(t *testing.T) {
	t.Parallel()

	svc, _, organizer := newStaffFixture()
	ctx := context.Background()

	staff, err := svc.AssignStaff(ctx, organizer, service.AssignStaffInput{
		EventID:             "evt-1",
		StaffUserID:         "user-7",
		Role:                string(domain.StaffRoleTeamMembers),
		CanScan:             true,
		CanAssignSubSellers: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, staff.ID)
	require.Equal(t, domain.HierarchyRootLevel, staff.HierarchyLevel)
	require.Equal(t, organizer.ID, staff.OrganizerID)
	require.Nil(t, staff.AssignedByStaffID)
	require.True(t, staff.IsActive)
	require.Equal(t, domain.CommissionTypePercentage, staff.CommissionType)
}

func TestAssignStaffDenied(t *testing.T) {
	t.Parallel()

	svc, _, _ := newStaffFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		actor *domain.User
		input service.AssignStaffInput
		code  string
	}{
		{
			"non-organizer denied",
			&domain.User{ID: "stranger", Role: domain.UserRoleUser},
			service.AssignStaffInput{EventID: "evt-1", StaffUserID: "u", Role: "SELLER"},
			"FORBIDDEN",
		},
		{
			"missing event",
			&domain.User{ID: "org-1", Role: domain.UserRoleOrganizer},
			service.AssignStaffInput{EventID: "no-such", StaffUserID: "u", Role: "SELLER"},
			"NOT_FOUND",
		},
		{
			"unknown role rejected",
			&domain.User{ID: "org-1", Role: domain.UserRoleOrganizer},
			service.AssignStaffInput{EventID: "evt-1", StaffUserID: "u", Role: "DOOR_CREW"},
			"VALIDATION_FAILED",
		},
		{
			"missing staff user rejected",
			&domain.User{ID: "org-1", Role: domain.UserRoleOrganizer},
			service.AssignStaffInput{EventID: "evt-1", Role: "SELLER"},
			"VALIDATION_FAILED",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.AssignStaff(ctx, test.actor, test.input)
			requireCode(t, err, test.code)
		})
	}
}

func TestDelegateSubSeller(t *testing.T) {
	t.Parallel()

	parent := &domain.EventStaff{
		ID: "staff-1", EventID: "evt-1", StaffUserID: "user-p", OrganizerID: "org-1",
		Role: domain.StaffRoleTeamMembers, IsActive: true, CanAssignSubSellers: true,
		HierarchyLevel: domain.HierarchyRootLevel,
	}
	svc, _, _ := newStaffFixture(parent)
	ctx := context.Background()
	holder := &domain.User{ID: "user-p", Role: domain.UserRoleUser}

	child, err := svc.DelegateSubSeller(ctx, holder, parent.ID, service.AssignStaffInput{
		StaffUserID: "user-c",
		Role:        string(domain.StaffRoleAssociates),
	})
	require.NoError(t, err)
	require.Equal(t, 2, child.HierarchyLevel)
	require.Equal(t, "evt-1", child.EventID)
	require.NotNil(t, child.AssignedByStaffID)
	require.Equal(t, parent.ID, *child.AssignedByStaffID)
	require.Equal(t, parent.StaffUserID, child.OrganizerID, "the delegator owns the record")
}

func TestDelegateSubSellerAdmin(t *testing.T) {
	t.Parallel()

	parent := &domain.EventStaff{
		ID: "staff-1", EventID: "evt-1", StaffUserID: "user-p", OrganizerID: "org-1",
		Role: domain.StaffRoleTeamMembers, IsActive: true, CanAssignSubSellers: true,
		HierarchyLevel: 3,
	}
	svc, _, _ := newStaffFixture(parent)

	admin := &domain.User{ID: "adm", Role: domain.UserRoleAdmin}
	child, err := svc.DelegateSubSeller(context.Background(), admin, parent.ID, service.AssignStaffInput{
		StaffUserID: "user-c",
		Role:        string(domain.StaffRoleAssociates),
	})
	require.NoError(t, err)
	require.Equal(t, 4, child.HierarchyLevel)
}

func TestDelegateSubSellerRejections(t *testing.T) {
	t.Parallel()

	mk := func(mut func(*domain.EventStaff)) *domain.EventStaff {
		s := &domain.EventStaff{
			ID: "staff-1", EventID: "evt-1", StaffUserID: "user-p", OrganizerID: "org-1",
			Role: domain.StaffRoleTeamMembers, IsActive: true, CanAssignSubSellers: true,
			HierarchyLevel: domain.HierarchyRootLevel,
		}
		if mut != nil {
			mut(s)
		}
		return s
	}
	holder := &domain.User{ID: "user-p", Role: domain.UserRoleUser}
	input := service.AssignStaffInput{StaffUserID: "user-c", Role: string(domain.StaffRoleAssociates)}

	tests := []struct {
		name   string
		parent *domain.EventStaff
		actor  *domain.User
		code   string
	}{
		{"non-holder denied", mk(nil), &domain.User{ID: "other", Role: domain.UserRoleUser}, "FORBIDDEN"},
		{"nil actor denied", mk(nil), nil, "FORBIDDEN"},
		{"inactive parent conflicts", mk(func(s *domain.EventStaff) { s.IsActive = false }), holder, "CONFLICT"},
		{"missing delegation flag denied", mk(func(s *domain.EventStaff) { s.CanAssignSubSellers = false }), holder, "FORBIDDEN"},
		{"depth limit conflicts", mk(func(s *domain.EventStaff) { s.HierarchyLevel = domain.HierarchyMaxDepth }), holder, "CONFLICT"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			svc, _, _ := newStaffFixture(test.parent)
			_, err := svc.DelegateSubSeller(context.Background(), test.actor, test.parent.ID, input)
			requireCode(t, err, test.code)
		})
	}
}

func TestDelegationChainDepth(t *testing.T) {
	t.Parallel()

	// Walk a chain down from the root; the fifth record must refuse to
	// delegate further.
	svc, _, organizer := newStaffFixture()
	ctx := context.Background()

	current, err := svc.AssignStaff(ctx, organizer, service.AssignStaffInput{
		EventID:             "evt-1",
		StaffUserID:         "user-1",
		Role:                string(domain.StaffRoleTeamMembers),
		CanAssignSubSellers: true,
	})
	require.NoError(t, err)

	for i := 2; i <= domain.HierarchyMaxDepth; i++ {
		holder := &domain.User{ID: current.StaffUserID, Role: domain.UserRoleUser}
		current, err = svc.DelegateSubSeller(ctx, holder, current.ID, service.AssignStaffInput{
			StaffUserID:         "user-" + string(rune('0'+i)),
			Role:                string(domain.StaffRoleAssociates),
			CanAssignSubSellers: true,
		})
		require.NoError(t, err)
		require.Equal(t, i, current.HierarchyLevel)
	}

	holder := &domain.User{ID: current.StaffUserID, Role: domain.UserRoleUser}
	_, err = svc.DelegateSubSeller(ctx, holder, current.ID, service.AssignStaffInput{
		StaffUserID: "user-overflow",
		Role:        string(domain.StaffRoleAssociates),
	})
	requireCode(t, err, "CONFLICT")
}

func TestDeactivateStaff(t *testing.T) {
	t.Parallel()

	parent := &domain.EventStaff{
		ID: "staff-1", EventID: "evt-1", StaffUserID: "user-p", OrganizerID: "org-1",
		Role: domain.StaffRoleTeamMembers, IsActive: true, CanAssignSubSellers: true,
		HierarchyLevel: 1,
	}
	child := &domain.EventStaff{
		ID: "staff-2", EventID: "evt-1", StaffUserID: "user-c", OrganizerID: "org-1",
		Role: domain.StaffRoleAssociates, IsActive: true,
		AssignedByStaffID: strPtr(parent.ID), HierarchyLevel: 2,
	}
	svc, staffRepo, _ := newStaffFixture(parent, child)
	ctx := context.Background()

	// The child cannot touch its parent.
	err := svc.DeactivateStaff(ctx, &domain.User{ID: "user-c", Role: domain.UserRoleUser}, parent.ID)
	requireCode(t, err, "FORBIDDEN")

	// The parent deactivates its direct child.
	require.NoError(t, svc.DeactivateStaff(ctx, &domain.User{ID: "user-p", Role: domain.UserRoleUser}, child.ID))

	stored, err := staffRepo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.False(t, stored.IsActive)
}

func TestUpdateStaffFlags(t *testing.T) {
	t.Parallel()

	staff := &domain.EventStaff{
		ID: "staff-1", EventID: "evt-1", StaffUserID: "user-p", OrganizerID: "org-1",
		Role: domain.StaffRoleTeamMembers, IsActive: true, HierarchyLevel: 1,
	}
	svc, _, organizer := newStaffFixture(staff)
	ctx := context.Background()

	canScan := true
	updated, err := svc.UpdateStaffFlags(ctx, organizer, staff.ID, &canScan, nil)
	require.NoError(t, err)
	require.True(t, updated.CanScan)
	require.False(t, updated.CanAssignSubSellers)

	_, err = svc.UpdateStaffFlags(ctx, &domain.User{ID: "stranger", Role: domain.UserRoleUser}, staff.ID, &canScan, nil)
	requireCode(t, err, "FORBIDDEN")
}

func TestListEventStaff(t *testing.T) {
	t.Parallel()

	active := &domain.EventStaff{
		ID: "staff-1", EventID: "evt-1", StaffUserID: "user-a", OrganizerID: "org-1",
		Role: domain.StaffRoleAssociates, IsActive: true, HierarchyLevel: 1,
	}
	inactive := &domain.EventStaff{
		ID: "staff-2", EventID: "evt-1", StaffUserID: "user-b", OrganizerID: "org-1",
		Role: domain.StaffRoleAssociates, IsActive: false, HierarchyLevel: 1,
	}
	svc, _, organizer := newStaffFixture(active, inactive)
	ctx := context.Background()

	list, err := svc.ListEventStaff(ctx, organizer, "evt-1", true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, active.ID, list[0].ID)

	list, err = svc.ListEventStaff(ctx, organizer, "evt-1", false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = svc.ListEventStaff(ctx, &domain.User{ID: "user-a", Role: domain.UserRoleUser}, "evt-1", true)
	requireCode(t, err, "FORBIDDEN")
}

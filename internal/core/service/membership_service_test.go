package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

func TestMembershipService_AssignableUsers_Filters(t *testing.T) {
	users := newStubUserRepo()
	assocID := 3
	users.add(domain.User{UserID: 1, RoleID: domain.RoleAssociationUser})                           // candidate
	users.add(domain.User{UserID: 2, RoleID: domain.RoleAssociationUser, AssociationID: &assocID}) // already assigned
	users.add(domain.User{UserID: 3, RoleID: 1})                                                   // reserved admin role

	svc := NewMembershipService(users, discardLogger)

	candidates, err := svc.AssignableUsers(context.Background())
	if err != nil {
		t.Fatalf("expected candidates, got %v", err)
	}
	if len(candidates) != 1 || candidates[0].UserID != 1 {
		t.Fatalf("expected only user 1, got %+v", candidates)
	}
}

func TestMembershipService_AssignableUsers_Empty(t *testing.T) {
	svc := NewMembershipService(newStubUserRepo(), discardLogger)

	_, err := svc.AssignableUsers(context.Background())
	if !errors.Is(err, domain.ErrNoUsersFound) {
		t.Fatalf("expected ErrNoUsersFound, got %v", err)
	}
}

func TestMembershipService_AssignUnassign_RoundTrip(t *testing.T) {
	users := newStubUserRepo()
	users.add(domain.User{UserID: 1, RoleID: domain.RoleAssociationUser})
	svc := NewMembershipService(users, discardLogger)
	ctx := context.Background()

	err := svc.Assign(ctx, ports.AssignInput{AssociationID: 7, UserID: 1, ModifiedBy: "root"})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if users.users[1].AssociationID == nil || *users.users[1].AssociationID != 7 {
		t.Fatalf("expected association 7 on user, got %v", users.users[1].AssociationID)
	}

	assigned, err := svc.AssignedUsers(ctx, 7)
	if err != nil {
		t.Fatalf("expected assigned users, got %v", err)
	}
	if len(assigned) != 1 || assigned[0].UserID != 1 {
		t.Fatalf("expected user 1 assigned, got %+v", assigned)
	}

	// The assigned user is no longer a candidate.
	if _, err := svc.AssignableUsers(ctx); !errors.Is(err, domain.ErrNoUsersFound) {
		t.Fatalf("expected no candidates after assignment, got %v", err)
	}

	err = svc.Unassign(ctx, ports.UnassignInput{UserID: 1, AssociationID: 7, ModifiedBy: "root"})
	if err != nil {
		t.Fatalf("unassign failed: %v", err)
	}
	if users.users[1].AssociationID != nil {
		t.Fatal("expected association to be cleared")
	}
	if _, err := svc.AssignedUsers(ctx, 7); !errors.Is(err, domain.ErrNoUsersFound) {
		t.Fatalf("expected empty association after unassign, got %v", err)
	}
}

func TestMembershipService_Assign_UnknownUser(t *testing.T) {
	svc := NewMembershipService(newStubUserRepo(), discardLogger)

	err := svc.Assign(context.Background(), ports.AssignInput{AssociationID: 7, UserID: 99})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMembershipService_Unassign_WrongAssociation(t *testing.T) {
	users := newStubUserRepo()
	assocID := 7
	users.add(domain.User{UserID: 1, RoleID: domain.RoleAssociationUser, AssociationID: &assocID})
	svc := NewMembershipService(users, discardLogger)

	err := svc.Unassign(context.Background(), ports.UnassignInput{UserID: 1, AssociationID: 8})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for mismatched association, got %v", err)
	}
	if users.users[1].AssociationID == nil || *users.users[1].AssociationID != 7 {
		t.Fatal("expected assignment to be untouched")
	}
}

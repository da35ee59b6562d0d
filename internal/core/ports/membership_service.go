package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// AssignInput attaches a user to an association.
type AssignInput struct {
	AssociationID int
	UserID        int
	ModifiedBy    string
}

// UnassignInput detaches a user from the association it currently belongs to.
// The user must match both ids or the operation fails with not-found.
type UnassignInput struct {
	UserID        int
	AssociationID int
	ModifiedBy    string
}

// MembershipService manages association membership of non-admin users.
type MembershipService interface {
	// AssignableUsers lists users eligible for assignment: non-reserved role
	// and no current association.
	AssignableUsers(ctx context.Context) ([]domain.User, error)
	// AssignedUsers lists the non-reserved-role users currently attached to
	// the association.
	AssignedUsers(ctx context.Context, associationID int) ([]domain.User, error)
	Assign(ctx context.Context, input AssignInput) error
	Unassign(ctx context.Context, input UnassignInput) error
}

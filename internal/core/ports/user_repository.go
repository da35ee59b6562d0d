package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// UpdateResult carries the match/modify counts of a single-document update so
// services can distinguish "not found" from "matched but nothing changed".
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// UserProfileUpdate is the field set overwritten by the profile screen.
type UserProfileUpdate struct {
	Username string
	PhoneNo  string
	Password string
}

// UserUpdate is the full-field overwrite applied by the admin user editor.
// WalletBalance is optional; nil keeps the stored balance.
type UserUpdate struct {
	Username      string
	PhoneNo       string
	Password      string
	WalletBalance *float64
	Status        bool
	ModifiedBy    string
}

// UserRepository defines persistence operations against the users collection.
// Every update stamps modified_by/modified_date on the document.
type UserRepository interface {
	// FindForLogin joins the user to its role and returns the user only when
	// the role name matches. Returns domain.ErrUserNotFound otherwise.
	FindForLogin(ctx context.Context, email, roleName string) (*domain.User, error)
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindProfile joins the user to its association documents and returns the
	// fixed profile projection.
	FindProfile(ctx context.Context, userID int) (*domain.UserProfile, error)
	FindByRoleIDs(ctx context.Context, roleIDs []int) ([]domain.User, error)
	// FindUnassigned lists users outside the reserved admin roles whose
	// association_id is null.
	FindUnassigned(ctx context.Context) ([]domain.User, error)
	// FindByAssociation lists users outside the reserved admin roles assigned
	// to the given association.
	FindByAssociation(ctx context.Context, associationID int) ([]domain.User, error)
	FindByIDAndAssociation(ctx context.Context, userID, associationID int) (*domain.User, error)
	// NextUserID returns max(user_id)+1, or 1 on an empty collection. Not
	// safe against concurrent creators.
	NextUserID(ctx context.Context) (int, error)
	Insert(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, userID int, upd UserProfileUpdate) (UpdateResult, error)
	Update(ctx context.Context, userID int, upd UserUpdate) (UpdateResult, error)
	UpdateStatus(ctx context.Context, userID int, status bool, modifiedBy string) (UpdateResult, error)
	// SetAssociation assigns (non-nil) or clears (nil) the user's association.
	SetAssociation(ctx context.Context, userID int, associationID *int, modifiedBy string) (UpdateResult, error)
}

package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// CreateUserInput carries all fields required to create a user account.
type CreateUserInput struct {
	Username      string
	RoleID        int
	EmailID       string
	Password      string
	PhoneNo       string
	CreatedBy     string
	ResellerID    int
	ClientID      int
	AssociationID int
}

// UpdateUserInput is the admin editor's full-field overwrite.
type UpdateUserInput struct {
	UserID        int
	Username      string
	PhoneNo       string
	Password      string
	WalletBalance *float64
	Status        bool
	ModifiedBy    string
}

// SetUserStatusInput toggles a user's active flag.
type SetUserStatusInput struct {
	UserID     int
	Status     bool
	ModifiedBy string
}

// UserService defines the user management use cases.
type UserService interface {
	// ListUsers returns the managed-role users decorated with resolved
	// role/reseller/client/association names.
	ListUsers(ctx context.Context) ([]domain.UserListing, error)
	SelectableRoles(ctx context.Context) ([]domain.Role, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) error
	SetUserStatus(ctx context.Context, input SetUserStatusInput) error
}

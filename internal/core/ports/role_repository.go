package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// RoleRepository reads the user_roles reference collection.
type RoleRepository interface {
	FindByID(ctx context.Context, roleID int) (*domain.Role, error)
	FindByIDs(ctx context.Context, roleIDs []int) ([]domain.Role, error)
	// FindSelectable returns the roles offered in the create-user dropdown,
	// projected to role_id and role_name.
	FindSelectable(ctx context.Context) ([]domain.Role, error)
}

// RoleNameCache fronts the role reference data with a shared cache. A miss
// returns an incomplete map; callers fall back to the repository for the
// missing ids.
type RoleNameCache interface {
	GetNames(ctx context.Context, roleIDs []int) (map[int]string, error)
	SetNames(ctx context.Context, names map[int]string) error
}

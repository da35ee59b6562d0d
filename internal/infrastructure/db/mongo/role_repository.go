package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// RoleRepository reads the user_roles reference collection.
type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(rolesCollection)}
}

func (r *RoleRepository) FindByID(ctx context.Context, roleID int) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var role domain.Role
	if err := r.col.FindOne(ctx, bson.M{"role_id": roleID}).Decode(&role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) FindByIDs(ctx context.Context, roleIDs []int) ([]domain.Role, error) {
	return r.find(ctx, bson.M{"role_id": bson.M{"$in": roleIDs}}, nil)
}

// FindSelectable returns the roles offered in the create-user dropdown,
// projected to role_id and role_name only.
func (r *RoleRepository) FindSelectable(ctx context.Context) ([]domain.Role, error) {
	projection := bson.M{"role_id": 1, "role_name": 1, "_id": 0}
	return r.find(ctx, bson.M{"role_id": bson.M{"$in": []int{domain.RoleAssociationUser}}}, projection)
}

func (r *RoleRepository) find(ctx context.Context, filter, projection bson.M) ([]domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cur.Close(ctx)

	var roles []domain.Role
	if err := cur.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return roles, nil
}

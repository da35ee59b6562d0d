package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

const (
	usersCollection = "users"
	rolesCollection = "user_roles"
)

// UserRepository implements ports.UserRepository against the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the uniqueness indexes the id/email invariants rely
// on. Call once at startup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "association_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// loginRow is the shape produced by the login aggregation: the user document
// with its matched role unwound alongside it.
type loginRow struct {
	domain.User `bson:",inline"`
	Role        domain.Role `bson:"role"`
}

// FindForLogin joins the user to its role via $lookup and keeps the row only
// when the role name equals the requested one.
func (r *UserRepository) FindForLogin(ctx context.Context, email, roleName string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"email_id": email}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         rolesCollection,
			"localField":   "role_id",
			"foreignField": "role_id",
			"as":           "role",
		}}},
		{{Key: "$unwind", Value: "$role"}},
		{{Key: "$match", Value: bson.M{"role.role_name": roleName}}},
		{{Key: "$limit", Value: 1}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	defer cur.Close(ctx)

	var rows []loginRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("login lookup decode: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &rows[0].User, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email_id": email})
}

func (r *UserRepository) FindByIDAndAssociation(ctx context.Context, userID, associationID int) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "association_id": associationID})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// FindProfile joins the user to its association documents and applies the
// profile screen's fixed field allowlist.
func (r *UserRepository) FindProfile(ctx context.Context, userID int) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         associationsCollection,
			"localField":   "association_id",
			"foreignField": "association_id",
			"as":           "association_details",
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":                       0,
			"user_id":                   1,
			"username":                  1,
			"email_id":                  1,
			"phone_no":                  1,
			"wallet_bal":                1,
			"password":                  1,
			"autostop_time":             1,
			"autostop_unit":             1,
			"autostop_price":            1,
			"autostop_time_is_checked":  1,
			"autostop_unit_is_checked":  1,
			"autostop_price_is_checked": 1,
			"created_date":              1,
			"modified_date":             1,
			"created_by":                1,
			"modified_by":               1,
			"status":                    1,
			"association_details":       1,
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []domain.UserProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("profile decode: %w", err)
	}
	if len(profiles) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return &profiles[0], nil
}

func (r *UserRepository) FindByRoleIDs(ctx context.Context, roleIDs []int) ([]domain.User, error) {
	return r.findMany(ctx, bson.M{"role_id": bson.M{"$in": roleIDs}})
}

func (r *UserRepository) FindUnassigned(ctx context.Context) ([]domain.User, error) {
	return r.findMany(ctx, bson.M{
		"role_id":        bson.M{"$nin": domain.ReservedRoleIDs},
		"association_id": nil,
	})
}

func (r *UserRepository) FindByAssociation(ctx context.Context, associationID int) ([]domain.User, error) {
	return r.findMany(ctx, bson.M{
		"role_id":        bson.M{"$nin": domain.ReservedRoleIDs},
		"association_id": associationID,
	})
}

func (r *UserRepository) findMany(ctx context.Context, filter bson.M) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// NextUserID scans for the current maximum user_id and returns max+1 (1 when
// the collection is empty). Two concurrent callers can observe the same
// maximum; the unique index on user_id rejects the second insert.
func (r *UserRepository) NextUserID(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "user_id", Value: -1}})
	var last struct {
		UserID int `bson:"user_id"`
	}
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("max user_id: %w", err)
	}
	return last.UserID + 1, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int, upd ports.UserProfileUpdate) (ports.UpdateResult, error) {
	// The submitted username is also the audit actor on this screen.
	return r.updateOne(ctx, userID, bson.M{
		"username":      upd.Username,
		"phone_no":      upd.PhoneNo,
		"password":      upd.Password,
		"modified_by":   upd.Username,
		"modified_date": time.Now().UTC(),
	})
}

func (r *UserRepository) Update(ctx context.Context, userID int, upd ports.UserUpdate) (ports.UpdateResult, error) {
	set := bson.M{
		"username":      upd.Username,
		"phone_no":      upd.PhoneNo,
		"password":      upd.Password,
		"status":        upd.Status,
		"modified_by":   upd.ModifiedBy,
		"modified_date": time.Now().UTC(),
	}
	if upd.WalletBalance != nil {
		set["wallet_bal"] = *upd.WalletBalance
	}
	return r.updateOne(ctx, userID, set)
}

func (r *UserRepository) UpdateStatus(ctx context.Context, userID int, status bool, modifiedBy string) (ports.UpdateResult, error) {
	return r.updateOne(ctx, userID, bson.M{
		"status":        status,
		"modified_by":   modifiedBy,
		"modified_date": time.Now().UTC(),
	})
}

func (r *UserRepository) SetAssociation(ctx context.Context, userID int, associationID *int, modifiedBy string) (ports.UpdateResult, error) {
	set := bson.M{
		"modified_by":   modifiedBy,
		"modified_date": time.Now().UTC(),
	}
	if associationID != nil {
		set["association_id"] = *associationID
	} else {
		set["association_id"] = nil
	}
	return r.updateOne(ctx, userID, set)
}

func (r *UserRepository) updateOne(ctx context.Context, userID int, set bson.M) (ports.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update user: %w", err)
	}
	return ports.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

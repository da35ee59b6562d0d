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
	resellersCollection    = "reseller_details"
	clientsCollection      = "client_details"
	associationsCollection = "association_details"
)

// ResellerRepository reads the reseller_details collection.
type ResellerRepository struct {
	col *mongo.Collection
}

func NewResellerRepository(db *mongo.Database) *ResellerRepository {
	return &ResellerRepository{col: db.Collection(resellersCollection)}
}

func (r *ResellerRepository) FindByID(ctx context.Context, resellerID int) (*domain.Reseller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var reseller domain.Reseller
	if err := r.col.FindOne(ctx, bson.M{"reseller_id": resellerID}).Decode(&reseller); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResellerNotFound
		}
		return nil, fmt.Errorf("find reseller: %w", err)
	}
	return &reseller, nil
}

func (r *ResellerRepository) FindByIDs(ctx context.Context, resellerIDs []int) ([]domain.Reseller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"reseller_id": bson.M{"$in": resellerIDs}})
	if err != nil {
		return nil, fmt.Errorf("find resellers: %w", err)
	}
	defer cur.Close(ctx)

	var resellers []domain.Reseller
	if err := cur.All(ctx, &resellers); err != nil {
		return nil, fmt.Errorf("decode resellers: %w", err)
	}
	return resellers, nil
}

// ClientRepository manages the client_details collection.
type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(clientsCollection)}
}

func (r *ClientRepository) FindByReseller(ctx context.Context, resellerID int) ([]domain.Client, error) {
	return r.findMany(ctx, bson.M{"reseller_id": resellerID})
}

func (r *ClientRepository) FindByIDs(ctx context.Context, clientIDs []int) ([]domain.Client, error) {
	return r.findMany(ctx, bson.M{"client_id": bson.M{"$in": clientIDs}})
}

func (r *ClientRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []domain.Client
	if err := cur.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var client domain.Client
	if err := r.col.FindOne(ctx, bson.M{"client_email_id": email}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &client, nil
}

// NextClientID mirrors the users collection's max+1 assignment, with the same
// concurrency caveat.
func (r *ClientRepository) NextClientID(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "client_id", Value: -1}})
	var last struct {
		ClientID int `bson:"client_id"`
	}
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("max client_id: %w", err)
	}
	return last.ClientID + 1, nil
}

func (r *ClientRepository) Insert(ctx context.Context, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, client); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailExists
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, clientID int, upd ports.ClientUpdate) (ports.UpdateResult, error) {
	return r.updateOne(ctx, clientID, bson.M{
		"client_name":     upd.ClientName,
		"client_phone_no": upd.PhoneNo,
		"client_address":  upd.Address,
		"status":          upd.Status,
		"modified_by":     upd.ModifiedBy,
		"modified_date":   time.Now().UTC(),
	})
}

func (r *ClientRepository) UpdateStatus(ctx context.Context, clientID int, status bool, modifiedBy string) (ports.UpdateResult, error) {
	return r.updateOne(ctx, clientID, bson.M{
		"status":        status,
		"modified_by":   modifiedBy,
		"modified_date": time.Now().UTC(),
	})
}

func (r *ClientRepository) updateOne(ctx context.Context, clientID int, set bson.M) (ports.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"client_id": clientID}, bson.M{"$set": set})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update client: %w", err)
	}
	return ports.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// AssociationRepository manages the association_details collection.
type AssociationRepository struct {
	col *mongo.Collection
}

func NewAssociationRepository(db *mongo.Database) *AssociationRepository {
	return &AssociationRepository{col: db.Collection(associationsCollection)}
}

func (r *AssociationRepository) FindByIDs(ctx context.Context, associationIDs []int) ([]domain.Association, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"association_id": bson.M{"$in": associationIDs}})
	if err != nil {
		return nil, fmt.Errorf("find associations: %w", err)
	}
	defer cur.Close(ctx)

	var associations []domain.Association
	if err := cur.All(ctx, &associations); err != nil {
		return nil, fmt.Errorf("decode associations: %w", err)
	}
	return associations, nil
}

func (r *AssociationRepository) UpdateProfile(ctx context.Context, associationID int, upd ports.AssociationProfileUpdate) (ports.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"association_phone_no": upd.PhoneNo,
		"association_address":  upd.Address,
		"modified_by":          upd.ModifiedBy,
		"modified_date":        time.Now().UTC(),
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"association_id": associationID}, bson.M{"$set": set})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update association: %w", err)
	}
	return ports.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

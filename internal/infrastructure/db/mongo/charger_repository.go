package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

const chargersCollection = "charger_details"

// ChargerRepository manages the charger_details collection.
type ChargerRepository struct {
	col *mongo.Collection
}

func NewChargerRepository(db *mongo.Database) *ChargerRepository {
	return &ChargerRepository{col: db.Collection(chargersCollection)}
}

func (r *ChargerRepository) FindByAssociation(ctx context.Context, associationID int) ([]domain.Charger, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"assigned_association_id": associationID})
	if err != nil {
		return nil, fmt.Errorf("find chargers: %w", err)
	}
	defer cur.Close(ctx)

	var chargers []domain.Charger
	if err := cur.All(ctx, &chargers); err != nil {
		return nil, fmt.Errorf("decode chargers: %w", err)
	}
	return chargers, nil
}

func (r *ChargerRepository) FindByID(ctx context.Context, chargerID string) (*domain.Charger, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var charger domain.Charger
	if err := r.col.FindOne(ctx, bson.M{"charger_id": chargerID}).Decode(&charger); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChargerNotFound
		}
		return nil, fmt.Errorf("find charger: %w", err)
	}
	return &charger, nil
}

func (r *ChargerRepository) UpdateNetwork(ctx context.Context, chargerID string, upd ports.ChargerNetworkUpdate) (ports.UpdateResult, error) {
	return r.updateOne(ctx, chargerID, bson.M{
		"charger_accessibility": upd.Accessibility,
		"wifi_username":         upd.WifiUsername,
		"wifi_password":         upd.WifiPassword,
		"lat":                   upd.Lat,
		"long":                  upd.Long,
		"modified_by":           upd.ModifiedBy,
		"modified_date":         time.Now().UTC(),
	})
}

func (r *ChargerRepository) UpdateStatus(ctx context.Context, chargerID string, status bool, modifiedBy string) (ports.UpdateResult, error) {
	return r.updateOne(ctx, chargerID, bson.M{
		"status":        status,
		"modified_by":   modifiedBy,
		"modified_date": time.Now().UTC(),
	})
}

func (r *ChargerRepository) updateOne(ctx context.Context, chargerID string, set bson.M) (ports.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"charger_id": chargerID}, bson.M{"$set": set})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("update charger: %w", err)
	}
	return ports.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

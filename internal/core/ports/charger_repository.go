package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// ChargerNetworkUpdate overwrites a charger's accessibility, wifi credentials
// and geo-coordinates.
type ChargerNetworkUpdate struct {
	Accessibility string
	WifiUsername  string
	WifiPassword  string
	Lat           float64
	Long          float64
	ModifiedBy    string
}

// ChargerRepository manages the charger_details collection.
type ChargerRepository interface {
	FindByAssociation(ctx context.Context, associationID int) ([]domain.Charger, error)
	FindByID(ctx context.Context, chargerID string) (*domain.Charger, error)
	UpdateNetwork(ctx context.Context, chargerID string, upd ChargerNetworkUpdate) (UpdateResult, error)
	UpdateStatus(ctx context.Context, chargerID string, status bool, modifiedBy string) (UpdateResult, error)
}

package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// UpdateDeviceInput overwrites a charger's network and location settings.
type UpdateDeviceInput struct {
	ChargerID     string
	Accessibility string
	WifiUsername  string
	WifiPassword  string
	Lat           float64
	Long          float64
	ModifiedBy    string
}

// SetChargerStatusInput toggles a charger's active flag.
type SetChargerStatusInput struct {
	ChargerID  string
	Status     bool
	ModifiedBy string
}

// ChargerService defines the charger management use cases.
type ChargerService interface {
	ListByAssociation(ctx context.Context, associationID int) ([]domain.Charger, error)
	UpdateDevice(ctx context.Context, input UpdateDeviceInput) error
	SetChargerStatus(ctx context.Context, input SetChargerStatusInput) error
}

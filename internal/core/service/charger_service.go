package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// ChargerService implements charger device management.
type ChargerService struct {
	chargers ports.ChargerRepository
	logger   zerolog.Logger
}

func NewChargerService(chargers ports.ChargerRepository, logger zerolog.Logger) *ChargerService {
	return &ChargerService{chargers: chargers, logger: logger}
}

// ListByAssociation returns the chargers allocated to the association. An
// association with no chargers yields an empty list, not an error.
func (s *ChargerService) ListByAssociation(ctx context.Context, associationID int) ([]domain.Charger, error) {
	return s.chargers.FindByAssociation(ctx, associationID)
}

// UpdateDevice overwrites the charger's accessibility, wifi credentials and
// coordinates. Unknown charger ids are not-found.
func (s *ChargerService) UpdateDevice(ctx context.Context, input ports.UpdateDeviceInput) error {
	if _, err := s.chargers.FindByID(ctx, input.ChargerID); err != nil {
		return err
	}

	res, err := s.chargers.UpdateNetwork(ctx, input.ChargerID, ports.ChargerNetworkUpdate{
		Accessibility: input.Accessibility,
		WifiUsername:  input.WifiUsername,
		WifiPassword:  input.WifiPassword,
		Lat:           input.Lat,
		Long:          input.Long,
		ModifiedBy:    input.ModifiedBy,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("charger_id", input.ChargerID).Msg("failed to update charger")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Str("charger_id", input.ChargerID).Msg("charger updated")
	return nil
}

func (s *ChargerService) SetChargerStatus(ctx context.Context, input ports.SetChargerStatusInput) error {
	if _, err := s.chargers.FindByID(ctx, input.ChargerID); err != nil {
		return err
	}

	res, err := s.chargers.UpdateStatus(ctx, input.ChargerID, input.Status, input.ModifiedBy)
	if err != nil {
		s.logger.Error().Err(err).Str("charger_id", input.ChargerID).Msg("failed to update charger status")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Str("charger_id", input.ChargerID).Bool("status", input.Status).Msg("charger status changed")
	return nil
}

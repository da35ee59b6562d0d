package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// ClientService implements reseller-side client management.
type ClientService struct {
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

func (s *ClientService) ListClients(ctx context.Context, resellerID int) ([]domain.Client, error) {
	return s.clients.FindByReseller(ctx, resellerID)
}

// AddClient registers a client under a reseller. The email must be free; the
// id comes from the same max+1 scan used for users.
func (s *ClientService) AddClient(ctx context.Context, input ports.AddClientInput) (*domain.Client, error) {
	existing, err := s.clients.FindByEmail(ctx, input.EmailID)
	if err != nil && !errors.Is(err, domain.ErrClientNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	nextID, err := s.clients.NextClientID(ctx)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		ClientID:    nextID,
		ResellerID:  input.ResellerID,
		ClientName:  input.ClientName,
		PhoneNo:     input.PhoneNo,
		EmailID:     input.EmailID,
		Address:     input.Address,
		CreatedBy:   input.CreatedBy,
		CreatedDate: time.Now().UTC(),
		Status:      true,
	}

	if err := s.clients.Insert(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("client_email_id", input.EmailID).Msg("failed to add client")
		return nil, err
	}

	s.logger.Info().Int("client_id", client.ClientID).Int("reseller_id", client.ResellerID).Msg("client added")
	return client, nil
}

// UpdateClient overwrites the editable client fields. A zero-match update is
// reported as not-found.
func (s *ClientService) UpdateClient(ctx context.Context, input ports.UpdateClientInput) error {
	res, err := s.clients.Update(ctx, input.ClientID, ports.ClientUpdate{
		ClientName: input.ClientName,
		PhoneNo:    input.PhoneNo,
		Address:    input.Address,
		Status:     input.Status,
		ModifiedBy: input.ModifiedBy,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("client_id", input.ClientID).Msg("failed to update client")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrClientNotFound
	}
	if res.Modified == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("client_id", input.ClientID).Msg("client updated")
	return nil
}

func (s *ClientService) SetClientStatus(ctx context.Context, input ports.SetClientStatusInput) error {
	res, err := s.clients.UpdateStatus(ctx, input.ClientID, input.Status, input.ModifiedBy)
	if err != nil {
		s.logger.Error().Err(err).Int("client_id", input.ClientID).Msg("failed to update client status")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrClientNotFound
	}

	s.logger.Info().Int("client_id", input.ClientID).Bool("status", input.Status).Msg("client status changed")
	return nil
}

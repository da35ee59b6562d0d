package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// AddClientInput carries the fields required to register a client under a
// reseller.
type AddClientInput struct {
	ResellerID int
	ClientName string
	PhoneNo    string
	EmailID    string
	Address    string
	CreatedBy  string
}

// UpdateClientInput is the client editor's overwrite.
type UpdateClientInput struct {
	ClientID   int
	ClientName string
	PhoneNo    string
	Address    string
	Status     bool
	ModifiedBy string
}

// SetClientStatusInput toggles a client's active flag.
type SetClientStatusInput struct {
	ClientID   int
	Status     bool
	ModifiedBy string
}

// ClientService defines the reseller-side client management use cases.
type ClientService interface {
	ListClients(ctx context.Context, resellerID int) ([]domain.Client, error)
	AddClient(ctx context.Context, input AddClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, input UpdateClientInput) error
	SetClientStatus(ctx context.Context, input SetClientStatusInput) error
}

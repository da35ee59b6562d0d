package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// ResellerRepository reads the reseller_details collection.
type ResellerRepository interface {
	FindByID(ctx context.Context, resellerID int) (*domain.Reseller, error)
	FindByIDs(ctx context.Context, resellerIDs []int) ([]domain.Reseller, error)
}

// ClientUpdate is the field set overwritten by the client editor.
type ClientUpdate struct {
	ClientName string
	PhoneNo    string
	Address    string
	Status     bool
	ModifiedBy string
}

// ClientRepository manages the client_details collection.
type ClientRepository interface {
	FindByReseller(ctx context.Context, resellerID int) ([]domain.Client, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByIDs(ctx context.Context, clientIDs []int) ([]domain.Client, error)
	// NextClientID returns max(client_id)+1, or 1 on an empty collection.
	NextClientID(ctx context.Context) (int, error)
	Insert(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, clientID int, upd ClientUpdate) (UpdateResult, error)
	UpdateStatus(ctx context.Context, clientID int, status bool, modifiedBy string) (UpdateResult, error)
}

// AssociationProfileUpdate is the field set overwritten by the association
// profile screen.
type AssociationProfileUpdate struct {
	PhoneNo    string
	Address    string
	ModifiedBy string
}

// AssociationRepository manages the association_details collection.
type AssociationRepository interface {
	FindByIDs(ctx context.Context, associationIDs []int) ([]domain.Association, error)
	UpdateProfile(ctx context.Context, associationID int, upd AssociationProfileUpdate) (UpdateResult, error)
}

package ports

import (
	"context"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
)

// UpdateUserProfileInput is the self-service profile overwrite. The username
// doubles as the audit actor, mirroring the profile screen's behavior.
type UpdateUserProfileInput struct {
	UserID   int
	Username string
	PhoneNo  string
	Password string
}

// UpdateAssociationProfileInput overwrites an association's contact fields.
type UpdateAssociationProfileInput struct {
	AssociationID int
	PhoneNo       string
	Address       string
	ModifiedBy    string
}

// ProfileService covers the per-account read/update screens, wallet included.
type ProfileService interface {
	FetchUserProfile(ctx context.Context, userID int) (*domain.UserProfile, error)
	UpdateUserProfile(ctx context.Context, input UpdateUserProfileInput) error
	UpdateAssociationProfile(ctx context.Context, input UpdateAssociationProfileInput) error
	// WalletBalance returns the wallet_bal of the given user.
	WalletBalance(ctx context.Context, userID int) (float64, error)
}

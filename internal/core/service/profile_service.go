package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// ProfileService implements the per-account profile and wallet screens.
type ProfileService struct {
	users        ports.UserRepository
	associations ports.AssociationRepository
	logger       zerolog.Logger
}

func NewProfileService(users ports.UserRepository, associations ports.AssociationRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, associations: associations, logger: logger}
}

func (s *ProfileService) FetchUserProfile(ctx context.Context, userID int) (*domain.UserProfile, error) {
	return s.users.FindProfile(ctx, userID)
}

// UpdateUserProfile overwrites the user's own editable fields. The submitted
// username is recorded as the audit actor.
func (s *ProfileService) UpdateUserProfile(ctx context.Context, input ports.UpdateUserProfileInput) error {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return err
	}

	res, err := s.users.UpdateProfile(ctx, input.UserID, ports.UserProfileUpdate{
		Username: input.Username,
		PhoneNo:  input.PhoneNo,
		Password: input.Password,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Msg("failed to update user profile")
		return err
	}
	// The pre-check above makes a zero match unreachable in practice, but the
	// update is a separate query and the document can vanish in between.
	if res.Matched == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("user_id", input.UserID).Msg("user profile updated")
	return nil
}

// UpdateAssociationProfile overwrites an association's contact fields. A
// missing association is not-found; a matched document with zero modified
// fields is reported as ErrNothingModified, which callers surface as a 500.
func (s *ProfileService) UpdateAssociationProfile(ctx context.Context, input ports.UpdateAssociationProfileInput) error {
	res, err := s.associations.UpdateProfile(ctx, input.AssociationID, ports.AssociationProfileUpdate{
		PhoneNo:    input.PhoneNo,
		Address:    input.Address,
		ModifiedBy: input.ModifiedBy,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("association_id", input.AssociationID).Msg("failed to update association profile")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrAssociationNotFound
	}
	if res.Modified == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("association_id", input.AssociationID).Msg("association profile updated")
	return nil
}

func (s *ProfileService) WalletBalance(ctx context.Context, userID int) (float64, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// MembershipService manages assignment of users to associations.
type MembershipService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewMembershipService(users ports.UserRepository, logger zerolog.Logger) *MembershipService {
	return &MembershipService{users: users, logger: logger}
}

// AssignableUsers lists assignment candidates. An empty result is reported as
// ErrNoUsersFound, which the route renders as a 404.
func (s *MembershipService) AssignableUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsersFound
	}
	return users, nil
}

// AssignedUsers lists the non-admin users attached to the association, with
// the same empty-as-404 contract as AssignableUsers.
func (s *MembershipService) AssignedUsers(ctx context.Context, associationID int) ([]domain.User, error) {
	users, err := s.users.FindByAssociation(ctx, associationID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsersFound
	}
	return users, nil
}

// Assign attaches the user to the association. The user must exist; an update
// reporting zero modified documents is an internal failure, not a no-op.
func (s *MembershipService) Assign(ctx context.Context, input ports.AssignInput) error {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return err
	}

	associationID := input.AssociationID
	res, err := s.users.SetAssociation(ctx, input.UserID, &associationID, input.ModifiedBy)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Int("association_id", input.AssociationID).Msg("failed to assign user to association")
		return err
	}
	if res.Modified == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("user_id", input.UserID).Int("association_id", input.AssociationID).Msg("user assigned to association")
	return nil
}

// Unassign detaches the user, requiring it to currently match both the user
// and association ids before nulling the association field.
func (s *MembershipService) Unassign(ctx context.Context, input ports.UnassignInput) error {
	if _, err := s.users.FindByIDAndAssociation(ctx, input.UserID, input.AssociationID); err != nil {
		return err
	}

	res, err := s.users.SetAssociation(ctx, input.UserID, nil, input.ModifiedBy)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Int("association_id", input.AssociationID).Msg("failed to remove user from association")
		return err
	}
	if res.Modified == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("user_id", input.UserID).Int("association_id", input.AssociationID).Msg("user removed from association")
	return nil
}

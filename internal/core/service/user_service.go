package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// UserService implements admin user management.
type UserService struct {
	users        ports.UserRepository
	roles        ports.RoleRepository
	resellers    ports.ResellerRepository
	clients      ports.ClientRepository
	associations ports.AssociationRepository
	roleCache    ports.RoleNameCache
	logger       zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	resellers ports.ResellerRepository,
	clients ports.ClientRepository,
	associations ports.AssociationRepository,
	roleCache ports.RoleNameCache,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		users:        users,
		roles:        roles,
		resellers:    resellers,
		clients:      clients,
		associations: associations,
		roleCache:    roleCache,
		logger:       logger,
	}
}

// ListUsers loads all managed-role users and batch-resolves the display names
// of their role, reseller, client and association in four reference queries,
// merging them into the listing. Unresolvable roles render as "Unknown";
// the tenant names stay null.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.UserListing, error) {
	users, err := s.users.FindByRoleIDs(ctx, domain.ManagedRoleIDs)
	if err != nil {
		return nil, err
	}

	roleIDs := make([]int, 0, len(users))
	resellerIDs := make([]int, 0, len(users))
	clientIDs := make([]int, 0, len(users))
	associationIDs := make([]int, 0, len(users))
	seenRole := map[int]bool{}
	seenReseller := map[int]bool{}
	seenClient := map[int]bool{}
	seenAssociation := map[int]bool{}
	for _, u := range users {
		if !seenRole[u.RoleID] {
			seenRole[u.RoleID] = true
			roleIDs = append(roleIDs, u.RoleID)
		}
		if !seenReseller[u.ResellerID] {
			seenReseller[u.ResellerID] = true
			resellerIDs = append(resellerIDs, u.ResellerID)
		}
		if !seenClient[u.ClientID] {
			seenClient[u.ClientID] = true
			clientIDs = append(clientIDs, u.ClientID)
		}
		if u.AssociationID != nil && !seenAssociation[*u.AssociationID] {
			seenAssociation[*u.AssociationID] = true
			associationIDs = append(associationIDs, *u.AssociationID)
		}
	}

	roleNames, err := s.resolveRoleNames(ctx, roleIDs)
	if err != nil {
		return nil, err
	}

	resellerNames := map[int]string{}
	if len(resellerIDs) > 0 {
		resellers, err := s.resellers.FindByIDs(ctx, resellerIDs)
		if err != nil {
			return nil, err
		}
		for _, r := range resellers {
			resellerNames[r.ResellerID] = r.ResellerName
		}
	}

	clientNames := map[int]string{}
	if len(clientIDs) > 0 {
		clients, err := s.clients.FindByIDs(ctx, clientIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range clients {
			clientNames[c.ClientID] = c.ClientName
		}
	}

	associationNames := map[int]string{}
	if len(associationIDs) > 0 {
		associations, err := s.associations.FindByIDs(ctx, associationIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range associations {
			associationNames[a.AssociationID] = a.AssociationName
		}
	}

	listings := make([]domain.UserListing, 0, len(users))
	for _, u := range users {
		l := domain.UserListing{User: u, RoleName: "Unknown"}
		if name, ok := roleNames[u.RoleID]; ok {
			l.RoleName = name
		}
		if name, ok := resellerNames[u.ResellerID]; ok {
			l.ResellerName = &name
		}
		if name, ok := clientNames[u.ClientID]; ok {
			l.ClientName = &name
		}
		if u.AssociationID != nil {
			if name, ok := associationNames[*u.AssociationID]; ok {
				l.AssociationName = &name
			}
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// resolveRoleNames serves role names from the shared cache where possible,
// falling back to the reference collection for the misses. Cache failures are
// logged and ignored; roles are read-only data and the repository is always
// authoritative.
func (s *UserService) resolveRoleNames(ctx context.Context, roleIDs []int) (map[int]string, error) {
	names := map[int]string{}
	if len(roleIDs) == 0 {
		return names, nil
	}

	if s.roleCache != nil {
		cached, err := s.roleCache.GetNames(ctx, roleIDs)
		if err != nil {
			s.logger.Warn().Err(err).Msg("role cache read failed")
		} else {
			names = cached
		}
	}

	missing := make([]int, 0, len(roleIDs))
	for _, id := range roleIDs {
		if _, ok := names[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return names, nil
	}

	roles, err := s.roles.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	fetched := make(map[int]string, len(roles))
	for _, r := range roles {
		names[r.RoleID] = r.RoleName
		fetched[r.RoleID] = r.RoleName
	}

	if s.roleCache != nil && len(fetched) > 0 {
		if err := s.roleCache.SetNames(ctx, fetched); err != nil {
			s.logger.Warn().Err(err).Msg("role cache write failed")
		}
	}

	return names, nil
}

func (s *UserService) SelectableRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.FindSelectable(ctx)
}

// CreateUser registers a new account. The role must exist and the email must
// be unregistered. The id is assigned by scanning the current maximum; two
// concurrent creates can collide, the unique index on user_id turns the loser
// into an error instead of a duplicate.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if _, err := s.roles.FindByID(ctx, input.RoleID); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, input.EmailID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	nextID, err := s.users.NextUserID(ctx)
	if err != nil {
		return nil, err
	}

	associationID := input.AssociationID
	user := &domain.User{
		UserID:        nextID,
		RoleID:        input.RoleID,
		ResellerID:    input.ResellerID,
		ClientID:      input.ClientID,
		AssociationID: &associationID,
		Username:      input.Username,
		EmailID:       input.EmailID,
		Password:      input.Password,
		PhoneNo:       input.PhoneNo,
		WalletBalance: 0,
		CreatedBy:     input.CreatedBy,
		CreatedDate:   time.Now().UTC(),
		Status:        true,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email_id", input.EmailID).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int("user_id", user.UserID).Int("role_id", user.RoleID).Msg("user created")
	return user, nil
}

// UpdateUser overwrites the editable fields of an existing user. When no
// wallet balance is submitted the stored balance is kept.
func (s *UserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) error {
	existing, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	balance := existing.WalletBalance
	if input.WalletBalance != nil {
		balance = *input.WalletBalance
	}

	res, err := s.users.Update(ctx, input.UserID, ports.UserUpdate{
		Username:      input.Username,
		PhoneNo:       input.PhoneNo,
		Password:      input.Password,
		WalletBalance: &balance,
		Status:        input.Status,
		ModifiedBy:    input.ModifiedBy,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Msg("failed to update user")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("user_id", input.UserID).Msg("user updated")
	return nil
}

func (s *UserService) SetUserStatus(ctx context.Context, input ports.SetUserStatusInput) error {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		return err
	}

	res, err := s.users.UpdateStatus(ctx, input.UserID, input.Status, input.ModifiedBy)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Msg("failed to update user status")
		return err
	}
	if res.Matched == 0 {
		return domain.ErrNothingModified
	}

	s.logger.Info().Int("user_id", input.UserID).Bool("status", input.Status).Msg("user status changed")
	return nil
}

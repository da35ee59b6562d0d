package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[int]*domain.User
	roleNames map[int]string // role_id -> role_name, used by FindForLogin
	findErr   error          // if set, every lookup returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:     make(map[int]*domain.User),
		roleNames: make(map[int]string),
	}
}

func (r *stubUserRepo) add(u domain.User) {
	clone := u
	r.users[u.UserID] = &clone
}

func (r *stubUserRepo) FindForLogin(_ context.Context, email, roleName string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.EmailID == email && r.roleNames[u.RoleID] == roleName {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, userID int) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmailID == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindProfile(_ context.Context, userID int) (*domain.UserProfile, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.UserProfile{User: *u}, nil
}

func (r *stubUserRepo) FindByRoleIDs(_ context.Context, roleIDs []int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		for _, id := range roleIDs {
			if u.RoleID == id {
				out = append(out, *u)
				break
			}
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindUnassigned(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if reservedRole(u.RoleID) || u.AssociationID != nil {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByAssociation(_ context.Context, associationID int) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.users {
		if reservedRole(u.RoleID) || u.AssociationID == nil || *u.AssociationID != associationID {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByIDAndAssociation(_ context.Context, userID, associationID int) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok || u.AssociationID == nil || *u.AssociationID != associationID {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) NextUserID(_ context.Context) (int, error) {
	max := 0
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	clone := *user
	r.users[user.UserID] = &clone
	return nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, userID int, upd ports.UserProfileUpdate) (ports.UpdateResult, error) {
	u, ok := r.users[userID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	u.Username = upd.Username
	u.PhoneNo = upd.PhoneNo
	u.Password = upd.Password
	actor := upd.Username
	u.ModifiedBy = &actor
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *stubUserRepo) Update(_ context.Context, userID int, upd ports.UserUpdate) (ports.UpdateResult, error) {
	u, ok := r.users[userID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	u.Username = upd.Username
	u.PhoneNo = upd.PhoneNo
	u.Password = upd.Password
	if upd.WalletBalance != nil {
		u.WalletBalance = *upd.WalletBalance
	}
	u.Status = upd.Status
	actor := upd.ModifiedBy
	u.ModifiedBy = &actor
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, userID int, status bool, modifiedBy string) (ports.UpdateResult, error) {
	u, ok := r.users[userID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	u.Status = status
	u.ModifiedBy = &modifiedBy
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *stubUserRepo) SetAssociation(_ context.Context, userID int, associationID *int, modifiedBy string) (ports.UpdateResult, error) {
	u, ok := r.users[userID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	u.AssociationID = associationID
	u.ModifiedBy = &modifiedBy
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func reservedRole(roleID int) bool {
	for _, id := range domain.ReservedRoleIDs {
		if roleID == id {
			return true
		}
	}
	return false
}

type stubRoleRepo struct {
	roles map[int]string
}

func newStubRoleRepo(roles map[int]string) *stubRoleRepo {
	return &stubRoleRepo{roles: roles}
}

func (r *stubRoleRepo) FindByID(_ context.Context, roleID int) (*domain.Role, error) {
	name, ok := r.roles[roleID]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &domain.Role{RoleID: roleID, RoleName: name}, nil
}

func (r *stubRoleRepo) FindByIDs(_ context.Context, roleIDs []int) ([]domain.Role, error) {
	var out []domain.Role
	for _, id := range roleIDs {
		if name, ok := r.roles[id]; ok {
			out = append(out, domain.Role{RoleID: id, RoleName: name})
		}
	}
	return out, nil
}

func (r *stubRoleRepo) FindSelectable(_ context.Context) ([]domain.Role, error) {
	var out []domain.Role
	if name, ok := r.roles[domain.RoleAssociationUser]; ok {
		out = append(out, domain.Role{RoleID: domain.RoleAssociationUser, RoleName: name})
	}
	return out, nil
}

type stubResellerRepo struct {
	resellers map[int]*domain.Reseller
}

func newStubResellerRepo() *stubResellerRepo {
	return &stubResellerRepo{resellers: make(map[int]*domain.Reseller)}
}

func (r *stubResellerRepo) FindByID(_ context.Context, resellerID int) (*domain.Reseller, error) {
	res, ok := r.resellers[resellerID]
	if !ok {
		return nil, domain.ErrResellerNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *stubResellerRepo) FindByIDs(_ context.Context, resellerIDs []int) ([]domain.Reseller, error) {
	var out []domain.Reseller
	for _, id := range resellerIDs {
		if res, ok := r.resellers[id]; ok {
			out = append(out, *res)
		}
	}
	return out, nil
}

type stubClientRepo struct {
	clients map[int]*domain.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int]*domain.Client)}
}

func (r *stubClientRepo) FindByReseller(_ context.Context, resellerID int) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		if c.ResellerID == resellerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.EmailID == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByIDs(_ context.Context, clientIDs []int) ([]domain.Client, error) {
	var out []domain.Client
	for _, id := range clientIDs {
		if c, ok := r.clients[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClientRepo) NextClientID(_ context.Context) (int, error) {
	max := 0
	for id := range r.clients {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (r *stubClientRepo) Insert(_ context.Context, client *domain.Client) error {
	clone := *client
	r.clients[client.ClientID] = &clone
	return nil
}

func (r *stubClientRepo) Update(_ context.Context, clientID int, upd ports.ClientUpdate) (ports.UpdateResult, error) {
	c, ok := r.clients[clientID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	modified := c.ClientName != upd.ClientName || c.PhoneNo != upd.PhoneNo ||
		c.Address != upd.Address || c.Status != upd.Status
	c.ClientName = upd.ClientName
	c.PhoneNo = upd.PhoneNo
	c.Address = upd.Address
	c.Status = upd.Status
	actor := upd.ModifiedBy
	c.ModifiedBy = &actor
	res := ports.UpdateResult{Matched: 1}
	if modified {
		res.Modified = 1
	}
	return res, nil
}

func (r *stubClientRepo) UpdateStatus(_ context.Context, clientID int, status bool, modifiedBy string) (ports.UpdateResult, error) {
	c, ok := r.clients[clientID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	c.Status = status
	c.ModifiedBy = &modifiedBy
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

type stubAssociationRepo struct {
	associations map[int]*domain.Association
}

func newStubAssociationRepo() *stubAssociationRepo {
	return &stubAssociationRepo{associations: make(map[int]*domain.Association)}
}

func (r *stubAssociationRepo) FindByIDs(_ context.Context, associationIDs []int) ([]domain.Association, error) {
	var out []domain.Association
	for _, id := range associationIDs {
		if a, ok := r.associations[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

// UpdateProfile reports Modified=0 when the submitted values equal the stored
// ones, mirroring MongoDB's matched-but-not-modified behavior.
func (r *stubAssociationRepo) UpdateProfile(_ context.Context, associationID int, upd ports.AssociationProfileUpdate) (ports.UpdateResult, error) {
	a, ok := r.associations[associationID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	modified := a.PhoneNo != upd.PhoneNo || a.Address != upd.Address
	a.PhoneNo = upd.PhoneNo
	a.Address = upd.Address
	actor := upd.ModifiedBy
	a.ModifiedBy = &actor
	res := ports.UpdateResult{Matched: 1}
	if modified {
		res.Modified = 1
	}
	return res, nil
}

type stubChargerRepo struct {
	chargers map[string]*domain.Charger
}

func newStubChargerRepo() *stubChargerRepo {
	return &stubChargerRepo{chargers: make(map[string]*domain.Charger)}
}

func (r *stubChargerRepo) add(c domain.Charger) {
	clone := c
	r.chargers[c.ChargerID] = &clone
}

func (r *stubChargerRepo) FindByAssociation(_ context.Context, associationID int) ([]domain.Charger, error) {
	var out []domain.Charger
	for _, c := range r.chargers {
		if c.AssignedAssociationID == associationID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubChargerRepo) FindByID(_ context.Context, chargerID string) (*domain.Charger, error) {
	c, ok := r.chargers[chargerID]
	if !ok {
		return nil, domain.ErrChargerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubChargerRepo) UpdateNetwork(_ context.Context, chargerID string, upd ports.ChargerNetworkUpdate) (ports.UpdateResult, error) {
	c, ok := r.chargers[chargerID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	c.Accessibility = upd.Accessibility
	c.WifiUsername = upd.WifiUsername
	c.WifiPassword = upd.WifiPassword
	c.Lat = upd.Lat
	c.Long = upd.Long
	actor := upd.ModifiedBy
	c.ModifiedBy = &actor
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (r *stubChargerRepo) UpdateStatus(_ context.Context, chargerID string, status bool, modifiedBy string) (ports.UpdateResult, error) {
	c, ok := r.chargers[chargerID]
	if !ok {
		return ports.UpdateResult{}, nil
	}
	c.Status = status
	c.ModifiedBy = &modifiedBy
	return ports.UpdateResult{Matched: 1, Modified: 1}, nil
}

// mapRoleCache is an in-memory ports.RoleNameCache.
type mapRoleCache struct {
	names map[int]string
	sets  int
}

func newMapRoleCache() *mapRoleCache {
	return &mapRoleCache{names: make(map[int]string)}
}

func (c *mapRoleCache) GetNames(_ context.Context, roleIDs []int) (map[int]string, error) {
	out := make(map[int]string)
	for _, id := range roleIDs {
		if name, ok := c.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func (c *mapRoleCache) SetNames(_ context.Context, names map[int]string) error {
	c.sets++
	for id, name := range names {
		c.names[id] = name
	}
	return nil
}

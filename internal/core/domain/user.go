package domain

import "time"

// Role ids are reference data seeded outside this service. Ids 1-4 are
// reserved for platform/reseller/client administrators; association-level
// accounts live in the ids below.
const (
	RoleAssociationAdmin = 4
	RoleAssociationUser  = 5
)

// ReservedRoleIDs are the admin roles excluded from association membership
// workflows: a user carrying one of these can never be assigned to an
// association.
var ReservedRoleIDs = []int{1, 2, 3, 4}

// ManagedRoleIDs are the roles visible to association administrators in the
// user management screens.
var ManagedRoleIDs = []int{RoleAssociationAdmin, RoleAssociationUser}

// User is a persisted account document. Passwords are stored and compared
// as-is; hashing is a pending hardening item tracked outside this service.
type User struct {
	UserID     int `json:"user_id" bson:"user_id"`
	RoleID     int `json:"role_id" bson:"role_id"`
	ResellerID int `json:"reseller_id" bson:"reseller_id"`
	ClientID   int `json:"client_id" bson:"client_id"`
	// AssociationID is nil while the user is unassigned; the nil value is
	// the filter predicate for assignment workflows.
	AssociationID *int    `json:"association_id" bson:"association_id"`
	Username      string  `json:"username" bson:"username"`
	EmailID       string  `json:"email_id" bson:"email_id"`
	Password      string  `json:"password" bson:"password"`
	PhoneNo       string  `json:"phone_no,omitempty" bson:"phone_no,omitempty"`
	WalletBalance float64 `json:"wallet_bal" bson:"wallet_bal"`

	AutostopTime           *int     `json:"autostop_time" bson:"autostop_time"`
	AutostopUnit           *int     `json:"autostop_unit" bson:"autostop_unit"`
	AutostopPrice          *float64 `json:"autostop_price" bson:"autostop_price"`
	AutostopTimeIsChecked  *bool    `json:"autostop_time_is_checked" bson:"autostop_time_is_checked"`
	AutostopUnitIsChecked  *bool    `json:"autostop_unit_is_checked" bson:"autostop_unit_is_checked"`
	AutostopPriceIsChecked *bool    `json:"autostop_price_is_checked" bson:"autostop_price_is_checked"`

	CreatedBy    string     `json:"created_by" bson:"created_by"`
	CreatedDate  time.Time  `json:"created_date" bson:"created_date"`
	ModifiedBy   *string    `json:"modified_by" bson:"modified_by"`
	ModifiedDate *time.Time `json:"modified_date" bson:"modified_date"`
	Status       bool       `json:"status" bson:"status"`
}

// Role maps a role_id to its display name. Read-only reference data.
type Role struct {
	RoleID   int    `json:"role_id" bson:"role_id"`
	RoleName string `json:"role_name" bson:"role_name"`
}

// UserListing is a User decorated with the denormalized names resolved from
// the role/reseller/client/association reference collections.
type UserListing struct {
	User            `bson:",inline"`
	RoleName        string  `json:"role_name"`
	ResellerName    *string `json:"reseller_name"`
	ClientName      *string `json:"client_name"`
	AssociationName *string `json:"association_name"`
}

// UserProfile is the fixed projection returned by the profile screen,
// carrying the joined association documents alongside the user fields.
type UserProfile struct {
	User               `bson:",inline"`
	AssociationDetails []Association `json:"association_details" bson:"association_details"`
}

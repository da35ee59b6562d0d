package handler

// Response envelope shared by every endpoint: status is "Success" on 2xx,
// "Failed" otherwise (the latter is rendered by the central error handler).
type dataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successData(data any) dataResponse {
	return dataResponse{Status: "Success", Data: data}
}

func successMessage(msg string) messageResponse {
	return messageResponse{Status: "Success", Message: msg}
}

// --- Auth ---

// loginRequest intentionally carries no validate tags: a missing credential
// field is an authentication failure (401), not a validation failure (400).
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Admin    string `json:"admin"`
}

// --- Profile ---

type fetchUserProfileRequest struct {
	UserID int `json:"user_id"`
}

type updateUserProfileRequest struct {
	UserID   int    `json:"user_id"  validate:"required"`
	Username string `json:"username" validate:"required"`
	PhoneNo  string `json:"phone_no" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateAssociationProfileRequest struct {
	AssociationID int    `json:"association_id"       validate:"required"`
	ModifiedBy    string `json:"modified_by"          validate:"required"`
	PhoneNo       string `json:"association_phone_no" validate:"required"`
	Address       string `json:"association_address"  validate:"required"`
}

// --- User management ---

type createUserRequest struct {
	Username      string `json:"username"       validate:"required"`
	RoleID        int    `json:"role_id"        validate:"required"`
	EmailID       string `json:"email_id"       validate:"required,email"`
	Password      string `json:"password"       validate:"required"`
	PhoneNo       string `json:"phone_no"`
	CreatedBy     string `json:"created_by"     validate:"required"`
	ResellerID    int    `json:"reseller_id"    validate:"required"`
	ClientID      int    `json:"client_id"      validate:"required"`
	AssociationID int    `json:"association_id" validate:"required"`
}

type updateUserRequest struct {
	UserID        int      `json:"user_id"     validate:"required"`
	Username      string   `json:"username"    validate:"required"`
	PhoneNo       string   `json:"phone_no"`
	Password      string   `json:"password"    validate:"required"`
	WalletBalance *float64 `json:"wallet_bal"`
	Status        bool     `json:"status"`
	ModifiedBy    string   `json:"modified_by" validate:"required"`
}

// Status is a pointer so a missing or non-boolean value is rejected rather
// than defaulting to false.
type deactivateUserRequest struct {
	UserID     int    `json:"user_id"     validate:"required"`
	ModifiedBy string `json:"modified_by" validate:"required"`
	Status     *bool  `json:"status"      validate:"required"`
}

// --- Chargers ---

type fetchAllocatedChargersRequest struct {
	AssociationID int `json:"association_id"`
}

type updateDeviceRequest struct {
	ModifiedBy    string  `json:"modified_by"           validate:"required"`
	ChargerID     string  `json:"charger_id"            validate:"required"`
	Accessibility string  `json:"charger_accessibility" validate:"required"`
	WifiUsername  string  `json:"wifi_username"         validate:"required"`
	WifiPassword  string  `json:"wifi_password"         validate:"required"`
	Lat           float64 `json:"lat"                   validate:"required"`
	Long          float64 `json:"long"                  validate:"required"`
}

type chargerStatusRequest struct {
	ModifiedBy string `json:"modified_by" validate:"required"`
	ChargerID  string `json:"charger_id"  validate:"required"`
	Status     *bool  `json:"status"      validate:"required"`
}

// --- Wallet ---

type walletRequest struct {
	UserID int `json:"user_id"`
}

// --- Association membership ---

type assignUserRequest struct {
	AssociationID int    `json:"association_id" validate:"required"`
	UserID        int    `json:"user_id"        validate:"required"`
	ModifiedBy    string `json:"modified_by"    validate:"required"`
}

type assignedUsersRequest struct {
	AssociationID int `json:"association_id" validate:"required"`
}

type unassignUserRequest struct {
	UserID        int    `json:"user_id"        validate:"required"`
	AssociationID int    `json:"association_id" validate:"required"`
	ModifiedBy    string `json:"modified_by"    validate:"required"`
}

// --- Clients ---

type fetchAllClientsRequest struct {
	ResellerID int `json:"reseller_id" validate:"required"`
}

type addClientRequest struct {
	ResellerID int    `json:"reseller_id"     validate:"required"`
	ClientName string `json:"client_name"     validate:"required"`
	PhoneNo    string `json:"client_phone_no" validate:"required"`
	EmailID    string `json:"client_email_id" validate:"required,email"`
	Address    string `json:"client_address"  validate:"required"`
	CreatedBy  string `json:"created_by"      validate:"required"`
}

type updateClientRequest struct {
	ClientID   int    `json:"client_id"       validate:"required"`
	ClientName string `json:"client_name"     validate:"required"`
	PhoneNo    string `json:"client_phone_no" validate:"required"`
	Address    string `json:"client_address"  validate:"required"`
	Status     bool   `json:"status"`
	ModifiedBy string `json:"modified_by"     validate:"required"`
}

type clientStatusRequest struct {
	ClientID   int    `json:"client_id"   validate:"required"`
	ModifiedBy string `json:"modified_by" validate:"required"`
	Status     *bool  `json:"status"      validate:"required"`
}

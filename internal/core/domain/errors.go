package domain

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrRoleNotFound        = errors.New("invalid role id")
	ErrEmailExists         = errors.New("email id already exists")
	ErrResellerNotFound    = errors.New("reseller not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrAssociationNotFound = errors.New("association not found")
	ErrChargerNotFound     = errors.New("charger not found")
	// ErrNoUsersFound is returned by list operations that report an empty
	// result set as a 404 rather than an empty array.
	ErrNoUsersFound = errors.New("no users found")
	// ErrNothingModified signals an update that matched a document but
	// changed no fields. Callers map it to a 500, not a 404.
	ErrNothingModified = errors.New("no fields were modified")
)

package domain

import "time"

// Reseller is the top-level tenant owning clients.
type Reseller struct {
	ResellerID   int        `json:"reseller_id" bson:"reseller_id"`
	ResellerName string     `json:"reseller_name" bson:"reseller_name"`
	PhoneNo      string     `json:"reseller_phone_no,omitempty" bson:"reseller_phone_no,omitempty"`
	EmailID      string     `json:"reseller_email_id,omitempty" bson:"reseller_email_id,omitempty"`
	Address      string     `json:"reseller_address,omitempty" bson:"reseller_address,omitempty"`
	CreatedBy    string     `json:"created_by" bson:"created_by"`
	CreatedDate  time.Time  `json:"created_date" bson:"created_date"`
	ModifiedBy   *string    `json:"modified_by" bson:"modified_by"`
	ModifiedDate *time.Time `json:"modified_date" bson:"modified_date"`
	Status       bool       `json:"status" bson:"status"`
}

// Client is a tenant under a reseller, owning associations.
type Client struct {
	ClientID     int        `json:"client_id" bson:"client_id"`
	ResellerID   int        `json:"reseller_id" bson:"reseller_id"`
	ClientName   string     `json:"client_name" bson:"client_name"`
	PhoneNo      string     `json:"client_phone_no" bson:"client_phone_no"`
	EmailID      string     `json:"client_email_id" bson:"client_email_id"`
	Address      string     `json:"client_address" bson:"client_address"`
	CreatedBy    string     `json:"created_by" bson:"created_by"`
	CreatedDate  time.Time  `json:"created_date" bson:"created_date"`
	ModifiedBy   *string    `json:"modified_by" bson:"modified_by"`
	ModifiedDate *time.Time `json:"modified_date" bson:"modified_date"`
	Status       bool       `json:"status" bson:"status"`
}

// Association is an organizational unit under a client. It owns users and
// chargers.
type Association struct {
	AssociationID   int        `json:"association_id" bson:"association_id"`
	ClientID        int        `json:"client_id" bson:"client_id"`
	AssociationName string     `json:"association_name" bson:"association_name"`
	PhoneNo         string     `json:"association_phone_no" bson:"association_phone_no"`
	EmailID         string     `json:"association_email_id,omitempty" bson:"association_email_id,omitempty"`
	Address         string     `json:"association_address" bson:"association_address"`
	CreatedBy       string     `json:"created_by" bson:"created_by"`
	CreatedDate     time.Time  `json:"created_date" bson:"created_date"`
	ModifiedBy      *string    `json:"modified_by" bson:"modified_by"`
	ModifiedDate    *time.Time `json:"modified_date" bson:"modified_date"`
	Status          bool       `json:"status" bson:"status"`
}

package domain

import "time"

// Charger is a physical charging device. Network credentials are stored
// verbatim so the device can be re-provisioned; treat the collection as
// sensitive.
type Charger struct {
	ChargerID             string     `json:"charger_id" bson:"charger_id"`
	AssignedAssociationID int        `json:"assigned_association_id" bson:"assigned_association_id"`
	Accessibility         string     `json:"charger_accessibility" bson:"charger_accessibility"`
	WifiUsername          string     `json:"wifi_username" bson:"wifi_username"`
	WifiPassword          string     `json:"wifi_password" bson:"wifi_password"`
	Lat                   float64    `json:"lat" bson:"lat"`
	Long                  float64    `json:"long" bson:"long"`
	CreatedBy             string     `json:"created_by" bson:"created_by"`
	CreatedDate           time.Time  `json:"created_date" bson:"created_date"`
	ModifiedBy            *string    `json:"modified_by" bson:"modified_by"`
	ModifiedDate          *time.Time `json:"modified_date" bson:"modified_date"`
	Status                bool       `json:"status" bson:"status"`
}

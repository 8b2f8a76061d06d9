package models

// Tenant represents a commercial tenant occupying a unit. Immutable reference data.
type Tenant struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Unit string `bson:"unit" json:"unit"` // e.g., "Suite 101"
}

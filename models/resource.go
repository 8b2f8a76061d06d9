package models

import "github.com/shopspring/decimal"

// AvailabilityWindow is a recurring weekly window during which a resource
// accepts bookings. Hours are local wall-clock, [0,24).
type AvailabilityWindow struct {
	Day       string `bson:"day" json:"day"` // day-range label, e.g. "Mon-Fri"
	StartHour int    `bson:"start_hour" json:"startHour"`
	EndHour   int    `bson:"end_hour" json:"endHour"`
}

// Resource is a shared bookable resource (conference room, studio, hall).
// Immutable reference data, never mutated at runtime.
type Resource struct {
	ID           string               `bson:"id" json:"id"`
	Name         string               `bson:"name" json:"name"`
	HourlyRate   decimal.Decimal      `bson:"hourly_rate" json:"hourlyRate"`
	Availability []AvailabilityWindow `bson:"availability" json:"availability"`
}

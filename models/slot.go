package models

// SlotStatus tags one hourly slot in a resource's grid.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotLocked    SlotStatus = "locked"
)

// Slot is one hourly booking opportunity for a resource. Derived on every
// read from the resource window and the booking set, never stored.
type Slot struct {
	Hour   int        `json:"hour"`
	Label  string     `json:"label"` // e.g. "14:00"
	Status SlotStatus `json:"status"`
}

package models

import "time"

// BookingSession tracks one resource-view selection flow. At most one hour
// may be locked at a time; the lock lives only as long as the session.
type BookingSession struct {
	SessionID  string    `json:"sessionId"`
	ResourceID string    `json:"resourceId"`
	TenantID   string    `json:"tenantId"`
	LockedHour *int      `json:"lockedHour,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingSessionView is the session as presented to the caller, with the
// freshly rebuilt slot grid (lock overlay applied).
type BookingSessionView struct {
	SessionID  string `json:"sessionId"`
	ResourceID string `json:"resourceId"`
	TenantID   string `json:"tenantId"`
	Slots      []Slot `json:"slots"`
}

// BookingConfirmation is the outcome of confirming a locked slot. Invoice is
// nil and Warning set when the tenant had no open invoice to reconcile into.
type BookingConfirmation struct {
	Booking Booking  `json:"booking"`
	Invoice *Invoice `json:"invoice,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

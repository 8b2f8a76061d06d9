package booking

import "errors"

var (
	// ErrSessionNotFound means the booking session does not exist or its
	// lock has expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrUnknownResource means the resource id is not in the catalog.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrSlotUnavailable means the clicked hour is booked or outside the
	// resource's availability windows.
	ErrSlotUnavailable = errors.New("slot is not available")
	// ErrNoSlotLocked means confirm was called without a locked slot.
	ErrNoSlotLocked = errors.New("no slot locked in session")
)

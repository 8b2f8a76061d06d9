package booking

import (
	"fmt"
	"sort"

	"opsdeck/models"
)

// BuildSlots derives the hourly slot grid for one resource from the full
// booking set. Pure: no side effects, recomputed on every read.
//
// Every availability window of the resource contributes its hours; windows
// are merged and overlapping hours de-duplicated. A slot is booked when any
// booking for the resource starts at that hour of day; the grid is a
// recurring daily view, there is no per-day calendar.
func BuildSlots(resource models.Resource, bookings []models.Booking) []models.Slot {
	bookedHours := make(map[int]bool)
	for _, b := range bookings {
		if b.ResourceID == resource.ID {
			bookedHours[b.StartTime.Hour()] = true
		}
	}

	seen := make(map[int]bool)
	var slots []models.Slot
	for _, w := range resource.Availability {
		for h := w.StartHour; h < w.EndHour; h++ {
			if seen[h] {
				continue
			}
			seen[h] = true
			status := models.SlotAvailable
			if bookedHours[h] {
				status = models.SlotBooked
			}
			slots = append(slots, models.Slot{Hour: h, Label: fmt.Sprintf("%d:00", h), Status: status})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Hour < slots[j].Hour })
	return slots
}

// hourAvailable reports whether the grid still offers the hour.
func hourAvailable(slots []models.Slot, hour int) bool {
	for _, s := range slots {
		if s.Hour == hour {
			return s.Status == models.SlotAvailable
		}
	}
	return false
}

// overlayLock marks the session's locked hour on a freshly built grid. A
// booked slot is never overwritten; a stale lock simply disappears.
func overlayLock(slots []models.Slot, lockedHour *int) []models.Slot {
	if lockedHour == nil {
		return slots
	}
	for i := range slots {
		if slots[i].Hour == *lockedHour && slots[i].Status == models.SlotAvailable {
			slots[i].Status = models.SlotLocked
		}
	}
	return slots
}

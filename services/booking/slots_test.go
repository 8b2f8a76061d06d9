package booking_test

import (
	"testing"
	"time"

	"opsdeck/models"
	"opsdeck/services/booking"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bookingAt(resourceID string, hour int) models.Booking {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	return models.Booking{
		ID:         "bk-test",
		ResourceID: resourceID,
		TenantID:   "t1",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Cost:       decimal.NewFromInt(100),
	}
}

func TestBuildSlots_WindowProducesHourlyGrid(t *testing.T) {
	resource := models.Resource{
		ID:           "br1",
		Name:         "Conference Room A",
		HourlyRate:   decimal.NewFromInt(100),
		Availability: []models.AvailabilityWindow{{Day: "Mon-Fri", StartHour: 9, EndHour: 17}},
	}

	slots := booking.BuildSlots(resource, nil)
	require.Len(t, slots, 8)
	require.Equal(t, 9, slots[0].Hour)
	require.Equal(t, "9:00", slots[0].Label)
	require.Equal(t, 16, slots[len(slots)-1].Hour)
	for _, s := range slots {
		require.Equal(t, models.SlotAvailable, s.Status)
	}
}

func TestBuildSlots_BookedHourIsMarked(t *testing.T) {
	resource := models.Resource{
		ID:           "br1",
		Availability: []models.AvailabilityWindow{{StartHour: 9, EndHour: 17}},
	}

	slots := booking.BuildSlots(resource, []models.Booking{bookingAt("br1", 14)})

	for _, s := range slots {
		if s.Hour == 14 {
			require.Equal(t, models.SlotBooked, s.Status)
		} else {
			require.Equal(t, models.SlotAvailable, s.Status)
		}
	}
}

func TestBuildSlots_OtherResourceBookingsIgnored(t *testing.T) {
	resource := models.Resource{
		ID:           "br2",
		Availability: []models.AvailabilityWindow{{StartHour: 9, EndHour: 17}},
	}

	slots := booking.BuildSlots(resource, []models.Booking{bookingAt("br1", 14)})
	for _, s := range slots {
		require.Equal(t, models.SlotAvailable, s.Status)
	}
}

func TestBuildSlots_OverlappingWindowsMerge(t *testing.T) {
	resource := models.Resource{
		ID: "br3",
		Availability: []models.AvailabilityWindow{
			{StartHour: 9, EndHour: 13},
			{StartHour: 11, EndHour: 17},
		},
	}

	slots := booking.BuildSlots(resource, nil)
	require.Len(t, slots, 8)
	seen := make(map[int]bool)
	for i, s := range slots {
		require.False(t, seen[s.Hour], "hour %d appears twice", s.Hour)
		seen[s.Hour] = true
		if i > 0 {
			require.Greater(t, s.Hour, slots[i-1].Hour)
		}
	}
}

func TestBuildSlots_DisjointWindows(t *testing.T) {
	resource := models.Resource{
		ID: "br3",
		Availability: []models.AvailabilityWindow{
			{StartHour: 9, EndHour: 12},
			{StartHour: 14, EndHour: 17},
		},
	}

	slots := booking.BuildSlots(resource, nil)
	require.Len(t, slots, 6)
	hours := make([]int, 0, len(slots))
	for _, s := range slots {
		hours = append(hours, s.Hour)
	}
	require.Equal(t, []int{9, 10, 11, 14, 15, 16}, hours)
}

func TestBuildSlots_NoWindowsNoSlots(t *testing.T) {
	resource := models.Resource{ID: "br4"}
	require.Empty(t, booking.BuildSlots(resource, nil))
}

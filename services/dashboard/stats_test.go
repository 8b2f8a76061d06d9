package dashboard_test

import (
	"testing"
	"time"

	"opsdeck/catalog"
	"opsdeck/models"
	"opsdeck/services/dashboard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBuild_SumsSeedInvoices(t *testing.T) {
	cat := catalog.Default()
	stats := dashboard.Build(cat.SeedInvoices, cat.SeedBookings, cat)

	// 350.75 + 1250.00 + 220.50 + 340.00 + 155.00
	require.True(t, stats.TotalBilled.Equal(decimal.RequireFromString("2316.25")))
	// Everything except the two Paid invoices.
	require.True(t, stats.TotalOutstanding.Equal(decimal.RequireFromString("1625.50")))
	require.Equal(t, 3, stats.ActiveTenants)
	require.Equal(t, 5, stats.InvoiceCount)
	require.Equal(t, 1, stats.BookingCount)
	require.Equal(t, 2, stats.StatusCounts["Paid"])
	require.Equal(t, 1, stats.StatusCounts["Pending"])
	require.Equal(t, 1, stats.StatusCounts["Retrying"])
	require.Equal(t, 1, stats.StatusCounts["Overdue"])
}

func TestBuild_RecentBookingsNamedAndCapped(t *testing.T) {
	cat := catalog.Default()
	now := time.Now()
	var bookings []models.Booking
	for i := 0; i < 6; i++ {
		bookings = append(bookings, models.Booking{
			ID:         "bk" + string(rune('a'+i)),
			ResourceID: "br1",
			TenantID:   "t1",
			StartTime:  now.Add(-time.Duration(i+1) * time.Hour),
		})
	}
	bookings = append(bookings, models.Booking{
		ID: "bk-x", ResourceID: "missing", TenantID: "missing",
		StartTime: now.Add(-30 * time.Minute),
	})

	stats := dashboard.Build(nil, bookings, cat)
	require.Len(t, stats.RecentBookings, 4)

	// Most recent first; unknown ids fall back to placeholder names.
	require.Equal(t, "Unknown Tenant", stats.RecentBookings[0].Tenant)
	require.Equal(t, "Unknown Resource", stats.RecentBookings[0].Resource)
	require.Equal(t, "Smith Accounting LLC", stats.RecentBookings[1].Tenant)
	require.Equal(t, "Conference Room A", stats.RecentBookings[1].Resource)
	require.Equal(t, "30 minutes ago", stats.RecentBookings[0].When)
	require.Equal(t, "1 hour ago", stats.RecentBookings[1].When)
}

func TestStatsContext_RendersSnapshot(t *testing.T) {
	cat := catalog.Default()
	stats := dashboard.Build(cat.SeedInvoices, cat.SeedBookings, cat)

	text := dashboard.StatsContext(stats)
	require.Contains(t, text, "Total Billed: $2316.25")
	require.Contains(t, text, "Total Outstanding: $1625.50")
	require.Contains(t, text, "Active Tenants: 3")
	require.Contains(t, text, "Number of Invoices: 5")
}

package dashboard

import (
	"fmt"
	"sort"
	"time"

	"opsdeck/catalog"
	"opsdeck/models"

	"github.com/shopspring/decimal"
)

// Stats is the dashboard snapshot consumed by the UI and the report export.
type Stats struct {
	TotalBilled      decimal.Decimal      `json:"totalBilled"`
	TotalOutstanding decimal.Decimal      `json:"totalOutstanding"`
	ActiveTenants    int                  `json:"activeTenants"`
	InvoiceCount     int                  `json:"invoiceCount"`
	BookingCount     int                  `json:"bookingCount"`
	StatusCounts     map[string]int       `json:"statusCounts"`
	RecentBookings   []RecentBookingEntry `json:"recentBookings"`
}

// RecentBookingEntry names a recent booking for display.
type RecentBookingEntry struct {
	Tenant   string `json:"tenant"`
	Resource string `json:"resource"`
	When     string `json:"when"` // relative label, e.g. "2 hours ago"
}

// Build computes the snapshot. TotalOutstanding sums every non-Paid invoice;
// the four most recent bookings (by start time) are named via the catalog.
func Build(invoices []models.Invoice, bookings []models.Booking, cat *catalog.Catalog) Stats {
	stats := Stats{
		ActiveTenants:    len(cat.Tenants),
		InvoiceCount:     len(invoices),
		BookingCount:     len(bookings),
		StatusCounts:     make(map[string]int),
		TotalBilled:      decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}

	for _, inv := range invoices {
		stats.TotalBilled = stats.TotalBilled.Add(inv.TotalAmount)
		if inv.Status != models.StatusPaid {
			stats.TotalOutstanding = stats.TotalOutstanding.Add(inv.TotalAmount)
		}
		stats.StatusCounts[string(inv.Status)]++
	}

	recent := make([]models.Booking, len(bookings))
	copy(recent, bookings)
	sort.Slice(recent, func(i, j int) bool { return recent[i].StartTime.After(recent[j].StartTime) })
	if len(recent) > 4 {
		recent = recent[:4]
	}
	for _, b := range recent {
		entry := RecentBookingEntry{Tenant: "Unknown Tenant", Resource: "Unknown Resource", When: formatTimeAgo(b.StartTime)}
		if t := cat.TenantByID(b.TenantID); t != nil {
			entry.Tenant = t.Name
		}
		if r := cat.ResourceByID(b.ResourceID); r != nil {
			entry.Resource = r.Name
		}
		stats.RecentBookings = append(stats.RecentBookings, entry)
	}

	return stats
}

// StatsContext renders the snapshot as the text block handed to the report
// generator.
func StatsContext(s Stats) string {
	return fmt.Sprintf(
		"Total Billed: $%s\nTotal Outstanding: $%s\nActive Tenants: %d\nNumber of Recent Bookings: %d\nNumber of Invoices: %d\n",
		s.TotalBilled.StringFixed(2),
		s.TotalOutstanding.StringFixed(2),
		s.ActiveTenants,
		s.BookingCount,
		s.InvoiceCount,
	)
}

func formatTimeAgo(t time.Time) string {
	seconds := int(time.Since(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	intervals := []struct {
		secs int
		unit string
	}{
		{31536000, "year"},
		{2592000, "month"},
		{86400, "day"},
		{3600, "hour"},
		{60, "minute"},
	}
	for _, iv := range intervals {
		if n := seconds / iv.secs; n >= 1 {
			if n == 1 {
				return fmt.Sprintf("1 %s ago", iv.unit)
			}
			return fmt.Sprintf("%d %ss ago", n, iv.unit)
		}
	}
	return "Just now"
}

package catalog

import (
	"opsdeck/models"

	"github.com/shopspring/decimal"
)

// Default returns the built-in demo catalog: three tenants, three bookable
// resources, three utility meters, five seed invoices and one seed booking.
func Default() *Catalog {
	return &Catalog{
		Tenants: []models.Tenant{
			{ID: "t1", Name: "Smith Accounting LLC", Unit: "Suite 101"},
			{ID: "t2", Name: "Innovate Tech Inc.", Unit: "Suite 102"},
			{ID: "t3", Name: "Creative Designs Co.", Unit: "Suite 205"},
		},
		Resources: []models.Resource{
			{
				ID: "br1", Name: "Conference Room A",
				HourlyRate:   decimal.NewFromInt(100),
				Availability: []models.AvailabilityWindow{{Day: "Mon-Fri", StartHour: 9, EndHour: 17}},
			},
			{
				ID: "br2", Name: "Podcast Studio",
				HourlyRate:   decimal.NewFromInt(200),
				Availability: []models.AvailabilityWindow{{Day: "Mon-Fri", StartHour: 9, EndHour: 17}},
			},
			{
				ID: "br3", Name: "Event Hall",
				HourlyRate:   decimal.NewFromInt(50),
				Availability: []models.AvailabilityWindow{{Day: "Mon-Fri", StartHour: 9, EndHour: 21}},
			},
		},
		Meters: []models.UtilityMeter{
			{ID: "um1", TenantID: "t1", Unit: "Suite 101", UtilityType: "Power", HistoricalUsage: []float64{120, 125, 122, 130, 128, 135}},
			{ID: "um2", TenantID: "t1", Unit: "Suite 101", UtilityType: "Water", HistoricalUsage: []float64{30, 32, 29, 33, 95, 34}},
			{ID: "um3", TenantID: "t2", Unit: "Suite 102", UtilityType: "Power", HistoricalUsage: []float64{250, 260, 255, 265, 270, 268}},
		},
		SeedInvoices: []models.Invoice{
			{
				ID: "inv001", TenantID: "t1", IssueDate: "2023-10-01", DueDate: "2023-10-05",
				TotalAmount: dec("350.75"), Status: models.StatusPaid,
				LineItems: []models.InvoiceLineItem{
					{ID: "li1", Description: "Electricity", Amount: dec("150.75")},
					{ID: "li2", Description: "Conference Room A (2 hours)", Amount: dec("200.00")},
				},
			},
			{
				ID: "inv002", TenantID: "t2", IssueDate: "2023-10-01", DueDate: "2023-10-05",
				TotalAmount: dec("1250.00"), Status: models.StatusRetrying,
				LineItems: []models.InvoiceLineItem{
					{ID: "li3", Description: "Electricity", Amount: dec("350.00")},
					{ID: "li4", Description: "Water", Amount: dec("100.00")},
					{ID: "li5", Description: "Podcast Studio (4 hours)", Amount: dec("800.00")},
				},
			},
			{
				ID: "inv003", TenantID: "t3", IssueDate: "2023-10-01", DueDate: "2023-10-05",
				TotalAmount: dec("220.50"), Status: models.StatusOverdue,
				LineItems: []models.InvoiceLineItem{
					{ID: "li6", Description: "Electricity", Amount: dec("220.50")},
				},
			},
			{
				ID: "inv004", TenantID: "t1", IssueDate: "2023-09-01", DueDate: "2023-09-05",
				TotalAmount: dec("340.00"), Status: models.StatusPaid,
				LineItems: []models.InvoiceLineItem{
					{ID: "li7", Description: "Electricity", Amount: dec("140.00")},
					{ID: "li8", Description: "Event Hall (4 hours)", Amount: dec("200.00")},
				},
			},
			{
				ID: "inv005", TenantID: "t1", IssueDate: "2023-11-01", DueDate: "2023-11-05",
				TotalAmount: dec("155.00"), Status: models.StatusPending,
				LineItems: []models.InvoiceLineItem{
					{ID: "li9", Description: "Electricity", Amount: dec("155.00")},
				},
			},
		},
		SeedBookings: []models.Booking{
			seedBooking("bk1", "br1", "t1", 14, decimal.NewFromInt(100)),
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

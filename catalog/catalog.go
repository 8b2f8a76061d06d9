package catalog

import (
	"fmt"
	"os"
	"time"

	"opsdeck/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Catalog holds the immutable reference data loaded once at startup, plus
// the seed records that prime the mutable booking and invoice stores.
type Catalog struct {
	Tenants   []models.Tenant
	Resources []models.Resource
	Meters    []models.UtilityMeter

	SeedInvoices []models.Invoice
	SeedBookings []models.Booking
}

// Load reads a catalog from a YAML file. An empty path returns the built-in
// demo catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return f.toCatalog()
}

// TenantByID returns the tenant or nil.
func (c *Catalog) TenantByID(id string) *models.Tenant {
	for i := range c.Tenants {
		if c.Tenants[i].ID == id {
			return &c.Tenants[i]
		}
	}
	return nil
}

// ResourceByID returns the resource or nil.
func (c *Catalog) ResourceByID(id string) *models.Resource {
	for i := range c.Resources {
		if c.Resources[i].ID == id {
			return &c.Resources[i]
		}
	}
	return nil
}

// MeterByID returns the meter or nil.
func (c *Catalog) MeterByID(id string) *models.UtilityMeter {
	for i := range c.Meters {
		if c.Meters[i].ID == id {
			return &c.Meters[i]
		}
	}
	return nil
}

// File-facing types. Money comes in as floats and is converted to decimals
// when the domain models are built.

type catalogFile struct {
	Tenants   []models.Tenant    `yaml:"tenants"`
	Resources []resourceEntry    `yaml:"resources"`
	Meters    []meterEntry       `yaml:"meters"`
	Invoices  []invoiceEntry     `yaml:"invoices"`
	Bookings  []seedBookingEntry `yaml:"bookings"`
}

type resourceEntry struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	HourlyRate   float64       `yaml:"hourlyRate"`
	Availability []windowEntry `yaml:"availability"`
}

type windowEntry struct {
	Day       string `yaml:"day"`
	StartHour int    `yaml:"startHour"`
	EndHour   int    `yaml:"endHour"`
}

type meterEntry struct {
	ID              string    `yaml:"id"`
	TenantID        string    `yaml:"tenantId"`
	Unit            string    `yaml:"unit"`
	UtilityType     string    `yaml:"utilityType"`
	HistoricalUsage []float64 `yaml:"historicalUsage"`
}

type invoiceEntry struct {
	ID        string          `yaml:"id"`
	TenantID  string          `yaml:"tenantId"`
	IssueDate string          `yaml:"issueDate"`
	DueDate   string          `yaml:"dueDate"`
	Status    string          `yaml:"status"`
	LineItems []lineItemEntry `yaml:"lineItems"`
}

type lineItemEntry struct {
	ID          string  `yaml:"id"`
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
}

type seedBookingEntry struct {
	ID         string  `yaml:"id"`
	ResourceID string  `yaml:"resourceId"`
	TenantID   string  `yaml:"tenantId"`
	StartHour  int     `yaml:"startHour"`
	Cost       float64 `yaml:"cost"`
}

func (f catalogFile) toCatalog() (*Catalog, error) {
	c := &Catalog{Tenants: f.Tenants, Meters: make([]models.UtilityMeter, 0, len(f.Meters))}

	for _, m := range f.Meters {
		c.Meters = append(c.Meters, models.UtilityMeter(m))
	}

	for _, r := range f.Resources {
		res := models.Resource{
			ID:         r.ID,
			Name:       r.Name,
			HourlyRate: decimal.NewFromFloat(r.HourlyRate),
		}
		for _, w := range r.Availability {
			if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
				return nil, fmt.Errorf("resource %s: invalid availability window %d-%d", r.ID, w.StartHour, w.EndHour)
			}
			res.Availability = append(res.Availability, models.AvailabilityWindow(w))
		}
		if len(res.Availability) == 0 {
			return nil, fmt.Errorf("resource %s: no availability windows", r.ID)
		}
		c.Resources = append(c.Resources, res)
	}

	for _, e := range f.Invoices {
		inv := models.Invoice{
			ID:        e.ID,
			TenantID:  e.TenantID,
			IssueDate: e.IssueDate,
			DueDate:   e.DueDate,
			Status:    models.InvoiceStatus(e.Status),
		}
		for _, li := range e.LineItems {
			inv.LineItems = append(inv.LineItems, models.InvoiceLineItem{
				ID:          li.ID,
				Description: li.Description,
				Amount:      decimal.NewFromFloat(li.Amount),
			})
		}
		inv.TotalAmount = inv.LineItemSum()
		c.SeedInvoices = append(c.SeedInvoices, inv)
	}

	for _, b := range f.Bookings {
		c.SeedBookings = append(c.SeedBookings, seedBooking(b.ID, b.ResourceID, b.TenantID, b.StartHour, decimal.NewFromFloat(b.Cost)))
	}

	return c, nil
}

// seedBooking places a booking at the given hour of the current day, matching
// the recurring daily grid the slot builder works on.
func seedBooking(id, resourceID, tenantID string, hour int, cost decimal.Decimal) models.Booking {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	return models.Booking{
		ID:         id,
		ResourceID: resourceID,
		TenantID:   tenantID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Cost:       cost,
	}
}

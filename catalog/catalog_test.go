package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"opsdeck/catalog"
	"opsdeck/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDemoCatalog(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)
	require.Len(t, cat.Tenants, 3)
	require.Len(t, cat.Resources, 3)
	require.Len(t, cat.Meters, 3)
	require.Len(t, cat.SeedInvoices, 5)
	require.Len(t, cat.SeedBookings, 1)
}

func TestDefault_SeedDataIsConsistent(t *testing.T) {
	cat := catalog.Default()

	for _, inv := range cat.SeedInvoices {
		require.True(t, inv.TotalAmount.Equal(inv.LineItemSum()), "invoice %s total mismatch", inv.ID)
		require.NotNil(t, cat.TenantByID(inv.TenantID), "invoice %s references unknown tenant", inv.ID)
	}

	bk := cat.SeedBookings[0]
	require.Equal(t, "br1", bk.ResourceID)
	require.Equal(t, 14, bk.StartTime.Hour())
	require.Equal(t, bk.StartTime.Add(time.Hour), bk.EndTime)

	hall := cat.ResourceByID("br3")
	require.NotNil(t, hall)
	require.Equal(t, "Event Hall", hall.Name)
	require.Equal(t, 21, hall.Availability[0].EndHour)
	require.True(t, hall.HourlyRate.Equal(decimal.NewFromInt(50)))
}

func TestLookups_UnknownIDsReturnNil(t *testing.T) {
	cat := catalog.Default()
	require.Nil(t, cat.TenantByID("nope"))
	require.Nil(t, cat.ResourceByID("nope"))
	require.Nil(t, cat.MeterByID("nope"))
	require.NotNil(t, cat.MeterByID("um2"))
}

const catalogYAML = `
tenants:
  - id: t1
    name: Acme Holdings
    unit: Suite 300
resources:
  - id: r1
    name: Boardroom
    hourlyRate: 80.5
    availability:
      - day: Mon-Fri
        startHour: 8
        endHour: 18
meters:
  - id: m1
    tenantId: t1
    unit: Suite 300
    utilityType: Power
    historicalUsage: [10, 12, 11]
invoices:
  - id: i1
    tenantId: t1
    issueDate: "2026-08-01"
    dueDate: "2026-08-15"
    status: Pending
    lineItems:
      - id: l1
        description: Electricity
        amount: 42.25
bookings:
  - id: b1
    resourceId: r1
    tenantId: t1
    startHour: 10
    cost: 80.5
`

func TestLoad_ParsesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	require.Len(t, cat.Tenants, 1)
	require.Equal(t, "Acme Holdings", cat.Tenants[0].Name)

	room := cat.ResourceByID("r1")
	require.NotNil(t, room)
	require.True(t, room.HourlyRate.Equal(decimal.NewFromFloat(80.5)))
	require.Equal(t, models.AvailabilityWindow{Day: "Mon-Fri", StartHour: 8, EndHour: 18}, room.Availability[0])

	require.Len(t, cat.SeedInvoices, 1)
	inv := cat.SeedInvoices[0]
	require.Equal(t, models.StatusPending, inv.Status)
	require.True(t, inv.TotalAmount.Equal(decimal.NewFromFloat(42.25)))

	require.Len(t, cat.SeedBookings, 1)
	require.Equal(t, 10, cat.SeedBookings[0].StartTime.Hour())
}

func TestLoad_RejectsInvalidWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	bad := `
resources:
  - id: r1
    name: Boardroom
    hourlyRate: 80
    availability:
      - startHour: 17
        endHour: 9
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))
	_, err := catalog.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid availability window")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents a confirmed one-hour reservation of a resource.
// Bookings are append-only: never mutated or deleted after creation.
type Booking struct {
	ID         string          `bson:"id" json:"id"`
	ResourceID string          `bson:"resource_id" json:"resourceId"`
	TenantID   string          `bson:"tenant_id" json:"tenantId"`
	StartTime  time.Time       `bson:"start_time" json:"startTime"`
	EndTime    time.Time       `bson:"end_time" json:"endTime"` // always StartTime + 1h
	Cost       decimal.Decimal `bson:"cost" json:"cost"`
}

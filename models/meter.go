package models

// UtilityMeter tracks a tenant's historical utility usage. Immutable
// reference data consumed by the anomaly-detection collaborator.
type UtilityMeter struct {
	ID              string    `bson:"id" json:"id"`
	TenantID        string    `bson:"tenant_id" json:"tenantId"`
	Unit            string    `bson:"unit" json:"unit"`
	UtilityType     string    `bson:"utility_type" json:"utilityType"` // "Power", "Water" or "Gas"
	HistoricalUsage []float64 `bson:"historical_usage" json:"historicalUsage"`
}

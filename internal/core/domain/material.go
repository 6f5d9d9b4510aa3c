package domain

import "github.com/shopspring/decimal"

// Material is an entry in the materials price list. PricePerKg is the current
// buying rate; purchase line items snapshot their own rate at creation time,
// so editing a material never rewrites history.
type Material struct {
	MaterialID string          `json:"materialID"` // Primary key (UUID)
	Name       string          `json:"name"`       // Unique, trimmed
	PricePerKg decimal.Decimal `json:"pricePerKg"` // >= 0
	Unit       string          `json:"unit"`       // Defaults to "kg"
	AuditFields
}

// DefaultUnit is substituted when a material or line item carries no unit.
const DefaultUnit = "kg"

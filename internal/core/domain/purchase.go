package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem is one material-weight-price entry within a purchase.
// MaterialName, PricePerKg and Unit are snapshots taken at creation time.
// TotalPrice may be a manually negotiated value distinct from
// Weight * PricePerKg; the override is preserved as-is.
type PurchaseItem struct {
	MaterialID   *string         `json:"material,omitempty"` // Optional reference
	MaterialName string          `json:"materialName"`
	Weight       decimal.Decimal `json:"weight"`
	PricePerKg   decimal.Decimal `json:"pricePerKg"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Unit         string          `json:"unit"`
}

// Purchase records weighed material bought from a supplier. Purchases are
// immutable after creation: the ledger is append-only.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"` // Primary key (UUID)
	Items         []PurchaseItem  `json:"items"`
	SupplierID    *string         `json:"supplier,omitempty"`     // Optional reference
	SupplierName  *string         `json:"supplierName,omitempty"` // Snapshot, survives supplier renames/deletion
	SupplierPhone *string         `json:"supplierPhone,omitempty"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	CreatedBy     string          `json:"createdBy"` // Username of the recording admin
	CreatedAt     time.Time       `json:"createdAt"`
}

// ItemForMaterial returns the first line item referencing the given material,
// or nil when none matches.
func (p Purchase) ItemForMaterial(materialID string) *PurchaseItem {
	for i := range p.Items {
		if p.Items[i].MaterialID != nil && *p.Items[i].MaterialID == materialID {
			return &p.Items[i]
		}
	}
	return nil
}

// ItemsTotal sums the line item totals. GrandTotal is accepted as supplied by
// the client and may legitimately differ (negotiated price); callers wanting a
// consistency check compare against this.
func (p Purchase) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range p.Items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}

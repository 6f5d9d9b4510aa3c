package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// PurchaseItemRequest is one line item in a purchase being recorded.
// TotalPrice is accepted as supplied: operators may negotiate a price that
// differs from Weight * PricePerKg.
type PurchaseItemRequest struct {
	MaterialID   *string         `json:"material"`
	MaterialName string          `json:"materialName" binding:"required"`
	Weight       decimal.Decimal `json:"weight" binding:"required"`
	PricePerKg   decimal.Decimal `json:"pricePerKg" binding:"required"`
	TotalPrice   decimal.Decimal `json:"totalPrice" binding:"required"`
	Unit         string          `json:"unit"`
}

// CreatePurchaseRequest defines the data needed to record a purchase.
type CreatePurchaseRequest struct {
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	SupplierID *string               `json:"supplier"`
	GrandTotal decimal.Decimal       `json:"grandTotal" binding:"required"`
}

// PurchaseItemResponse mirrors a stored line item.
type PurchaseItemResponse struct {
	MaterialID   *string         `json:"material,omitempty"`
	MaterialName string          `json:"materialName"`
	Weight       decimal.Decimal `json:"weight"`
	PricePerKg   decimal.Decimal `json:"pricePerKg"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Unit         string          `json:"unit"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID    string                 `json:"purchaseID"`
	Items         []PurchaseItemResponse `json:"items"`
	SupplierID    *string                `json:"supplier,omitempty"`
	SupplierName  *string                `json:"supplierName,omitempty"`
	SupplierPhone *string                `json:"supplierPhone,omitempty"`
	GrandTotal    decimal.Decimal        `json:"grandTotal"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ListPurchasesParams defines query parameters for listing purchases.
type ListPurchasesParams struct {
	SupplierID string `form:"supplier"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = PurchaseItemResponse{
			MaterialID:   item.MaterialID,
			MaterialName: item.MaterialName,
			Weight:       item.Weight,
			PricePerKg:   item.PricePerKg,
			TotalPrice:   item.TotalPrice,
			Unit:         item.Unit,
		}
	}
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		Items:         items,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		SupplierPhone: p.SupplierPhone,
		GrandTotal:    p.GrandTotal,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to response DTOs.
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return res
}

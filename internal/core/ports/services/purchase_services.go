package services

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// PurchaseReaderSvc defines read operations over the purchase ledger.
type PurchaseReaderSvc interface {
	// ListPurchases retrieves purchases newest first, optionally narrowed to
	// one supplier.
	ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error)
}

// PurchaseWriterSvc defines write operations over the purchase ledger.
// Purchases are immutable once recorded, so there is no update or delete.
type PurchaseWriterSvc interface {
	// CreatePurchase records a purchase, snapshotting material and supplier
	// names so later edits to those entities never rewrite history.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, principal domain.Principal) (*domain.Purchase, error)
}

// PurchaseSvcFacade combines all purchase-related service interfaces.
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}

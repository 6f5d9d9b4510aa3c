package repositories

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// PurchaseReaderRepository defines read operations over the purchase ledger.
type PurchaseReaderRepository interface {
	// ListPurchases retrieves purchases newest first, with line items attached
	// and the referenced supplier resolved to name and phone where present.
	// supplierID narrows to one supplier when non-empty.
	ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error)
}

// PurchaseWriterRepository defines write operations over the purchase ledger.
// There is deliberately no update or delete: purchases are append-only.
type PurchaseWriterRepository interface {
	// SavePurchase inserts a purchase and its line items atomically.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReaderRepository
	PurchaseWriterRepository
}

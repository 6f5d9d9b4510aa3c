package repositories

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// SupplierReaderRepository defines read operations for the supplier directory.
type SupplierReaderRepository interface {
	// FindSupplierByID retrieves one supplier or apperrors.ErrNotFound.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers ordered by name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriterRepository defines write operations for the supplier directory.
type SupplierWriterRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier. Purchases keep their name snapshot.
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReaderRepository
	SupplierWriterRepository
}

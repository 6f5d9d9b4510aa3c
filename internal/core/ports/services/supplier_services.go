package services

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// SupplierReaderSvc defines read operations for the supplier directory.
type SupplierReaderSvc interface {
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for the supplier directory.
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, principal domain.Principal) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, principal domain.Principal) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier; super admins only. Purchases keep
	// their supplier name snapshot.
	DeleteSupplier(ctx context.Context, supplierID string, principal domain.Principal) error
}

// SupplierSvcFacade combines all supplier-related service interfaces.
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}

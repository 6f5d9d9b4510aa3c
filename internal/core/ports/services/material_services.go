package services

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// MaterialReaderSvc defines read operations for the price list.
type MaterialReaderSvc interface {
	// GetMaterialByID retrieves a specific material.
	GetMaterialByID(ctx context.Context, materialID string) (*domain.Material, error)

	// ListMaterials retrieves the full price list, ordered by name.
	ListMaterials(ctx context.Context) ([]domain.Material, error)
}

// MaterialWriterSvc defines write operations for the price list.
type MaterialWriterSvc interface {
	// CreateMaterial adds a material to the price list.
	CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest, principal domain.Principal) (*domain.Material, error)

	// UpdateMaterial changes a material's name, rate or unit. Past purchase
	// line items keep their snapshots.
	UpdateMaterial(ctx context.Context, materialID string, req dto.UpdateMaterialRequest, principal domain.Principal) (*domain.Material, error)

	// DeleteMaterial removes a material; super admins only.
	DeleteMaterial(ctx context.Context, materialID string, principal domain.Principal) error
}

// MaterialSvcFacade combines all material-related service interfaces.
type MaterialSvcFacade interface {
	MaterialReaderSvc
	MaterialWriterSvc
}

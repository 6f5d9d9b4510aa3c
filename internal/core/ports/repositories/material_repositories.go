package repositories

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// MaterialReaderRepository defines read operations for the price list.
type MaterialReaderRepository interface {
	// FindMaterialByID retrieves one material or apperrors.ErrNotFound.
	FindMaterialByID(ctx context.Context, materialID string) (*domain.Material, error)

	// ListMaterials retrieves all materials ordered by name.
	ListMaterials(ctx context.Context) ([]domain.Material, error)
}

// MaterialWriterRepository defines write operations for the price list.
type MaterialWriterRepository interface {
	// SaveMaterial inserts a new material. Name uniqueness violations map to
	// apperrors.ErrDuplicate.
	SaveMaterial(ctx context.Context, material domain.Material) error

	// UpdateMaterial persists changes to an existing material.
	UpdateMaterial(ctx context.Context, material domain.Material) error

	// DeleteMaterial removes a material. Historical purchase line items keep
	// their snapshots.
	DeleteMaterial(ctx context.Context, materialID string) error
}

// MaterialRepositoryFacade combines all material repository interfaces.
type MaterialRepositoryFacade interface {
	MaterialReaderRepository
	MaterialWriterRepository
}

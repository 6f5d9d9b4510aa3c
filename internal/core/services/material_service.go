package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// materialService implements the MaterialSvcFacade interface.
type materialService struct {
	BaseService
	materialRepo portsrepo.MaterialRepositoryFacade
}

// NewMaterialService creates a new material service.
func NewMaterialService(repo portsrepo.MaterialRepositoryFacade) portssvc.MaterialSvcFacade {
	return &materialService{materialRepo: repo}
}

var _ portssvc.MaterialSvcFacade = (*materialService)(nil)

func (s *materialService) CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest, principal domain.Principal) (*domain.Material, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("material name must not be blank: %w", apperrors.ErrValidation)
	}
	if req.PricePerKg.IsNegative() {
		return nil, fmt.Errorf("price per kg must not be negative: %w", apperrors.ErrValidation)
	}

	unit := req.Unit
	if unit == "" {
		unit = domain.DefaultUnit
	}

	now := time.Now()
	material := domain.Material{
		MaterialID: uuid.NewString(),
		Name:       name,
		PricePerKg: req.PricePerKg,
		Unit:       unit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.materialRepo.SaveMaterial(ctx, material); err != nil {
		s.LogError(ctx, err, "Failed to create material", slog.String("name", name))
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	s.LogInfo(ctx, "Material created", slog.String("material_id", material.MaterialID), slog.String("name", name))
	return &material, nil
}

func (s *materialService) UpdateMaterial(ctx context.Context, materialID string, req dto.UpdateMaterialRequest, principal domain.Principal) (*domain.Material, error) {
	material, err := s.materialRepo.FindMaterialByID(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to find material for update: %w", err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("material name must not be blank: %w", apperrors.ErrValidation)
		}
		material.Name = name
	}
	if req.PricePerKg != nil {
		if req.PricePerKg.IsNegative() {
			return nil, fmt.Errorf("price per kg must not be negative: %w", apperrors.ErrValidation)
		}
		material.PricePerKg = *req.PricePerKg
	}
	if req.Unit != nil && *req.Unit != "" {
		material.Unit = *req.Unit
	}
	material.LastUpdatedAt = time.Now()
	material.LastUpdatedBy = principal.UserID

	if err := s.materialRepo.UpdateMaterial(ctx, *material); err != nil {
		s.LogError(ctx, err, "Failed to update material", slog.String("material_id", materialID))
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	return material, nil
}

func (s *materialService) DeleteMaterial(ctx context.Context, materialID string, principal domain.Principal) error {
	if err := s.RequireDeleter(ctx, principal); err != nil {
		return err
	}

	if err := s.materialRepo.DeleteMaterial(ctx, materialID); err != nil {
		s.LogError(ctx, err, "Failed to delete material", slog.String("material_id", materialID))
		return fmt.Errorf("failed to delete material: %w", err)
	}

	s.LogInfo(ctx, "Material deleted", slog.String("material_id", materialID))
	return nil
}

func (s *materialService) GetMaterialByID(ctx context.Context, materialID string) (*domain.Material, error) {
	material, err := s.materialRepo.FindMaterialByID(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return material, nil
}

func (s *materialService) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	materials, err := s.materialRepo.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	if materials == nil {
		return []domain.Material{}, nil
	}
	return materials, nil
}

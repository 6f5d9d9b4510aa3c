package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// CreateMaterialRequest defines the data needed to add a material to the price list.
type CreateMaterialRequest struct {
	Name       string          `json:"name" binding:"required"`
	PricePerKg decimal.Decimal `json:"pricePerKg" binding:"required"`
	Unit       string          `json:"unit"`
}

// UpdateMaterialRequest defines the data allowed for updating a material.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateMaterialRequest struct {
	Name       *string          `json:"name"`
	PricePerKg *decimal.Decimal `json:"pricePerKg"`
	Unit       *string          `json:"unit"`
}

// MaterialResponse defines the data returned for a material.
type MaterialResponse struct {
	MaterialID string          `json:"materialID"`
	Name       string          `json:"name"`
	PricePerKg decimal.Decimal `json:"pricePerKg"`
	Unit       string          `json:"unit"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToMaterialResponse converts a domain.Material to MaterialResponse DTO.
func ToMaterialResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{
		MaterialID: m.MaterialID,
		Name:       m.Name,
		PricePerKg: m.PricePerKg,
		Unit:       m.Unit,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.LastUpdatedAt,
	}
}

// ToListMaterialResponse converts a slice of domain.Material to response DTOs.
func ToListMaterialResponse(materials []domain.Material) []MaterialResponse {
	res := make([]MaterialResponse, len(materials))
	for i := range materials {
		res[i] = ToMaterialResponse(&materials[i])
	}
	return res
}

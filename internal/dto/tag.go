package dto

import (
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// CreateTagRequest defines the data needed to create an expense tag.
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// TagResponse defines the data returned for a tag.
type TagResponse struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ToTagResponse converts a domain.Tag to TagResponse DTO.
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		TagID: t.TagID,
		Name:  t.Name,
		Color: t.Color,
	}
}

// ToListTagResponse converts a slice of domain.Tag to response DTOs.
func ToListTagResponse(tags []domain.Tag) []TagResponse {
	res := make([]TagResponse, len(tags))
	for i := range tags {
		res[i] = ToTagResponse(&tags[i])
	}
	return res
}

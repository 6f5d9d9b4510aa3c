package services

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// TagReaderSvc defines read operations for expense tags.
type TagReaderSvc interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

// TagWriterSvc defines write operations for expense tags.
type TagWriterSvc interface {
	CreateTag(ctx context.Context, req dto.CreateTagRequest, principal domain.Principal) (*domain.Tag, error)

	// DeleteTag removes a tag; super admins only. Expenses referencing it are
	// untouched and simply lose the tag from their display list.
	DeleteTag(ctx context.Context, tagID string, principal domain.Principal) error
}

// TagSvcFacade combines all tag-related service interfaces.
type TagSvcFacade interface {
	TagReaderSvc
	TagWriterSvc
}

package repositories

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// TagReaderRepository defines read operations for expense tags.
type TagReaderRepository interface {
	FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

// TagWriterRepository defines write operations for expense tags.
type TagWriterRepository interface {
	SaveTag(ctx context.Context, tag domain.Tag) error

	// DeleteTag removes the tag and its expense links; the expenses
	// themselves are untouched.
	DeleteTag(ctx context.Context, tagID string) error
}

// TagRepositoryFacade combines all tag repository interfaces.
type TagRepositoryFacade interface {
	TagReaderRepository
	TagWriterRepository
}

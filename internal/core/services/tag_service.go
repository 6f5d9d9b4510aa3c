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

// tagService implements the TagSvcFacade interface.
type tagService struct {
	BaseService
	tagRepo portsrepo.TagRepositoryFacade
}

// NewTagService creates a new tag service.
func NewTagService(repo portsrepo.TagRepositoryFacade) portssvc.TagSvcFacade {
	return &tagService{tagRepo: repo}
}

var _ portssvc.TagSvcFacade = (*tagService)(nil)

func (s *tagService) CreateTag(ctx context.Context, req dto.CreateTagRequest, principal domain.Principal) (*domain.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("tag name must not be blank: %w", apperrors.ErrValidation)
	}

	color := req.Color
	if color == "" {
		color = domain.DefaultTagColor
	}

	now := time.Now()
	tag := domain.Tag{
		TagID: uuid.NewString(),
		Name:  name,
		Color: color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     principal.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: principal.UserID,
		},
	}

	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		s.LogError(ctx, err, "Failed to create tag", slog.String("name", name))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return &tag, nil
}

// DeleteTag removes the tag only; expenses that referenced it keep their
// history and silently lose the label.
func (s *tagService) DeleteTag(ctx context.Context, tagID string, principal domain.Principal) error {
	if err := s.RequireDeleter(ctx, principal); err != nil {
		return err
	}

	if err := s.tagRepo.DeleteTag(ctx, tagID); err != nil {
		s.LogError(ctx, err, "Failed to delete tag", slog.String("tag_id", tagID))
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	s.LogInfo(ctx, "Tag deleted", slog.String("tag_id", tagID))
	return nil
}

func (s *tagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if tags == nil {
		return []domain.Tag{}, nil
	}
	return tags, nil
}

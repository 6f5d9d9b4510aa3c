package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
)

type PgxTagRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTagRepository creates a new repository for expense tags.
func NewPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{pool: pool}
}

func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	query := `
		INSERT INTO tags (tag_id, name, color, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		tag.TagID,
		tag.Name,
		tag.Color,
		tag.CreatedAt,
		tag.CreatedBy,
		tag.LastUpdatedAt,
		tag.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tag %q already exists: %w", tag.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save tag: %w", err)
	}
	return nil
}

// DeleteTag removes the tag and its expense links in one transaction.
func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM expense_tags WHERE tag_id = $1;`, tagID); err != nil {
		return fmt.Errorf("failed to unlink tag from expenses: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM tags WHERE tag_id = $1;`, tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit tag deletion: %w", err)
	}
	return nil
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	query := `
		SELECT tag_id, name, color, created_at, created_by, last_updated_at, last_updated_by
		FROM tags
		WHERE tag_id = $1;
	`
	var t domain.Tag
	err := r.pool.QueryRow(ctx, query, tagID).Scan(
		&t.TagID,
		&t.Name,
		&t.Color,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag %s: %w", tagID, err)
	}
	return &t, nil
}

func (r *PgxTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	query := `
		SELECT tag_id, name, color, created_at, created_by, last_updated_at, last_updated_by
		FROM tags
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tag, error) {
		var t domain.Tag
		err := row.Scan(
			&t.TagID,
			&t.Name,
			&t.Color,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tags: %w", err)
	}
	return tags, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type PgxMaterialRepository struct {
	pool *pgxpool.Pool
}

// NewPgxMaterialRepository creates a new repository for the material price list.
func NewPgxMaterialRepository(pool *pgxpool.Pool) portsrepo.MaterialRepositoryFacade {
	return &PgxMaterialRepository{pool: pool}
}

func (r *PgxMaterialRepository) SaveMaterial(ctx context.Context, material domain.Material) error {
	query := `
		INSERT INTO materials (material_id, name, price_per_kg, unit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		material.MaterialID,
		material.Name,
		material.PricePerKg,
		material.Unit,
		material.CreatedAt,
		material.CreatedBy,
		material.LastUpdatedAt,
		material.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("material %q already exists: %w", material.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save material: %w", err)
	}
	return nil
}

func (r *PgxMaterialRepository) UpdateMaterial(ctx context.Context, material domain.Material) error {
	query := `
		UPDATE materials
		SET name = $2, price_per_kg = $3, unit = $4, last_updated_at = $5, last_updated_by = $6
		WHERE material_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		material.MaterialID,
		material.Name,
		material.PricePerKg,
		material.Unit,
		material.LastUpdatedAt,
		material.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("material %q already exists: %w", material.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMaterialRepository) DeleteMaterial(ctx context.Context, materialID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM materials WHERE material_id = $1;`, materialID)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMaterialRepository) FindMaterialByID(ctx context.Context, materialID string) (*domain.Material, error) {
	query := `
		SELECT material_id, name, price_per_kg, unit, created_at, created_by, last_updated_at, last_updated_by
		FROM materials
		WHERE material_id = $1;
	`
	var m domain.Material
	err := r.pool.QueryRow(ctx, query, materialID).Scan(
		&m.MaterialID,
		&m.Name,
		&m.PricePerKg,
		&m.Unit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find material %s: %w", materialID, err)
	}
	return &m, nil
}

func (r *PgxMaterialRepository) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	query := `
		SELECT material_id, name, price_per_kg, unit, created_at, created_by, last_updated_at, last_updated_by
		FROM materials
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials: %w", err)
	}
	defer rows.Close()

	materials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Material, error) {
		var m domain.Material
		err := row.Scan(
			&m.MaterialID,
			&m.Name,
			&m.PricePerKg,
			&m.Unit,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan materials: %w", err)
	}
	return materials, nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
)

type PgxPurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPurchaseRepository creates a new repository for the purchase ledger.
func NewPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{pool: pool}
}

// SavePurchase inserts the purchase row and its line items in one transaction.
// The supplier name and phone snapshots are stored on the purchase itself so
// the ledger survives supplier edits and deletions.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO purchases (purchase_id, supplier_id, supplier_name, supplier_phone, grand_total, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		purchase.PurchaseID,
		purchase.SupplierID,
		purchase.SupplierName,
		purchase.SupplierPhone,
		purchase.GrandTotal,
		purchase.CreatedBy,
		purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_items (purchase_id, position, material_id, material_name, weight, price_per_kg, total_price, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for i, item := range purchase.Items {
		_, err = tx.Exec(ctx, itemQuery,
			purchase.PurchaseID,
			i,
			item.MaterialID,
			item.MaterialName,
			item.Weight,
			item.PricePerKg,
			item.TotalPrice,
			item.Unit,
		)
		if err != nil {
			return fmt.Errorf("failed to save purchase item %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit purchase: %w", err)
	}
	return nil
}

// ListPurchases retrieves purchases newest first with line items attached in
// their original order. supplierID narrows to one supplier when non-empty.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, supplierID string) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, supplier_id, supplier_name, supplier_phone, grand_total, created_by, created_at
		FROM purchases
		WHERE ($1 = '' OR supplier_id = $1)
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Purchase, error) {
		var p domain.Purchase
		err := row.Scan(
			&p.PurchaseID,
			&p.SupplierID,
			&p.SupplierName,
			&p.SupplierPhone,
			&p.GrandTotal,
			&p.CreatedBy,
			&p.CreatedAt,
		)
		p.Items = []domain.PurchaseItem{}
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan purchases: %w", err)
	}
	if len(purchases) == 0 {
		return purchases, nil
	}

	index := make(map[string]int, len(purchases))
	ids := make([]string, len(purchases))
	for i, p := range purchases {
		index[p.PurchaseID] = i
		ids[i] = p.PurchaseID
	}

	itemQuery := `
		SELECT purchase_id, material_id, material_name, weight, price_per_kg, total_price, unit
		FROM purchase_items
		WHERE purchase_id = ANY($1)
		ORDER BY purchase_id, position;
	`
	itemRows, err := r.pool.Query(ctx, itemQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var purchaseID string
		var item domain.PurchaseItem
		err := itemRows.Scan(
			&purchaseID,
			&item.MaterialID,
			&item.MaterialName,
			&item.Weight,
			&item.PricePerKg,
			&item.TotalPrice,
			&item.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item: %w", err)
		}
		if i, ok := index[purchaseID]; ok {
			purchases[i].Items = append(purchases[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchase items: %w", err)
	}

	return purchases, nil
}

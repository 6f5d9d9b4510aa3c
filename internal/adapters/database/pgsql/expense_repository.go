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

type PgxExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExpenseRepository creates a new repository for the expense ledger.
func NewPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{pool: pool}
}

// SaveExpense inserts the expense row and its tag links in one transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO expenses (expense_id, description, amount, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, query,
		expense.ExpenseID,
		expense.Description,
		expense.Amount,
		expense.CreatedBy,
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	for _, tag := range expense.Tags {
		_, err = tx.Exec(ctx,
			`INSERT INTO expense_tags (expense_id, tag_id) VALUES ($1, $2);`,
			expense.ExpenseID, tag.TagID)
		if err != nil {
			return fmt.Errorf("failed to link tag %s: %w", tag.TagID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM expense_tags WHERE expense_id = $1;`, expenseID); err != nil {
		return fmt.Errorf("failed to unlink expense tags: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit expense deletion: %w", err)
	}
	return nil
}

// ListExpenses retrieves expenses newest first with their tags attached. The
// tag join is an inner join on the tags table, so links to since-deleted tags
// silently disappear.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, description, amount, created_by, created_at
		FROM expenses
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Expense, error) {
		var e domain.Expense
		err := row.Scan(&e.ExpenseID, &e.Description, &e.Amount, &e.CreatedBy, &e.CreatedAt)
		e.Tags = []domain.Tag{}
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	index := make(map[string]int, len(expenses))
	for i, e := range expenses {
		index[e.ExpenseID] = i
	}

	tagQuery := `
		SELECT et.expense_id, t.tag_id, t.name, t.color, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
		FROM expense_tags et
		JOIN tags t ON t.tag_id = et.tag_id;
	`
	tagRows, err := r.pool.Query(ctx, tagQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var expenseID string
		var t domain.Tag
		err := tagRows.Scan(
			&expenseID,
			&t.TagID,
			&t.Name,
			&t.Color,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense tag: %w", err)
		}
		if i, ok := index[expenseID]; ok {
			expenses[i].Tags = append(expenses[i].Tags, t)
		}
	}
	if err := tagRows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to read expense tags: %w", err)
	}

	return expenses, nil
}

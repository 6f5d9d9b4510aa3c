package repositories

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// ExpenseReaderRepository defines read operations for the expense ledger.
type ExpenseReaderRepository interface {
	// ListExpenses retrieves expenses newest first with tags resolved.
	// References to deleted tags are dropped, not errors.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriterRepository defines write operations for the expense ledger.
type ExpenseWriterRepository interface {
	// SaveExpense inserts an expense and its tag links atomically.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense and its tag links.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReaderRepository
	ExpenseWriterRepository
}

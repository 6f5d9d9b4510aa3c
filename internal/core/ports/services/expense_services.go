package services

import (
	"context"

	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for the expense ledger.
type ExpenseReaderSvc interface {
	// ListExpenses retrieves expenses newest first with tags resolved;
	// dangling tag references are silently dropped.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for the expense ledger.
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, principal domain.Principal) (*domain.Expense, error)

	// DeleteExpense removes an expense; super admins only.
	DeleteExpense(ctx context.Context, expenseID string, principal domain.Principal) error
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

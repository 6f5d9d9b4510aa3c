package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portsrepo "github.com/wazeer/wazeer_backend/internal/core/ports/repositories"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	tagRepo     portsrepo.TagReaderRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, tagRepo portsrepo.TagReaderRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, tagRepo: tagRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, principal domain.Principal) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("expense amount must not be negative: %w", apperrors.ErrValidation)
	}

	// Resolve tags up front so the response carries names and colors.
	// References to tags that no longer exist are dropped, not errors.
	tags := make([]domain.Tag, 0, len(req.TagIDs))
	for _, tagID := range req.TagIDs {
		tag, err := s.tagRepo.FindTagByID(ctx, tagID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve tag %s: %w", tagID, err)
		}
		tags = append(tags, *tag)
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Tags:        tags,
		CreatedBy:   principal.Username,
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to create expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, principal domain.Principal) error {
	if err := s.RequireDeleter(ctx, principal); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

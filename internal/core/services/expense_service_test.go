package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/core/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Mock TagReaderRepository ---
type MockTagReaderRepository struct {
	mock.Mock
}

func (m *MockTagReaderRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagReaderRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockTagRepo     *MockTagReaderRepository
	service         portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockTagRepo = new(MockTagReaderRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockTagRepo)
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ResolvesTags() {
	ctx := context.Background()
	principal := normalAdminPrincipal()
	tagID := uuid.NewString()
	tag := &domain.Tag{TagID: tagID, Name: "Fuel", Color: "#f59e0b"}
	req := dto.CreateExpenseRequest{
		Description: "Diesel for the truck",
		Amount:      decimal.NewFromInt(300),
		TagIDs:      []string{tagID},
	}

	suite.mockTagRepo.On("FindTagByID", ctx, tagID).Return(tag, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return len(e.Tags) == 1 && e.Tags[0].Name == "Fuel" && e.CreatedBy == principal.Username
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, principal)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Len(expense.Tags, 1)
	suite.Equal("Fuel", expense.Tags[0].Name)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockTagRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DropsDanglingTagRefs() {
	ctx := context.Background()
	goneTagID := uuid.NewString()
	req := dto.CreateExpenseRequest{
		Amount: decimal.NewFromInt(100),
		TagIDs: []string{goneTagID},
	}

	suite.mockTagRepo.On("FindTagByID", ctx, goneTagID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return len(e.Tags) == 0
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, normalAdminPrincipal())

	suite.Require().NoError(err)
	suite.Empty(expense.Tags)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeAmount() {
	ctx := context.Background()

	expense, err := suite.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Amount: decimal.NewFromInt(-5),
	}, normalAdminPrincipal())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ZeroAmountAllowed() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Amount: decimal.Zero,
	}, normalAdminPrincipal())

	suite.Require().NoError(err)
	suite.True(expense.Amount.IsZero())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_SuperAdmin() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockExpenseRepo.On("DeleteExpense", ctx, expenseID).Return(nil).Once()

	err := suite.service.DeleteExpense(ctx, expenseID, superAdminPrincipal())

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_ForbiddenForNormalAdmin() {
	ctx := context.Background()

	err := suite.service.DeleteExpense(ctx, uuid.NewString(), normalAdminPrincipal())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense")
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("ListExpenses", ctx).Return(nil, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx)

	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
}

// --- Run Suite ---
func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

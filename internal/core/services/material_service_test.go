package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wazeer/wazeer_backend/internal/apperrors"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	portssvc "github.com/wazeer/wazeer_backend/internal/core/ports/services"
	"github.com/wazeer/wazeer_backend/internal/core/services"
	"github.com/wazeer/wazeer_backend/internal/dto"
)

// --- Mock MaterialRepository ---
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) SaveMaterial(ctx context.Context, material domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) UpdateMaterial(ctx context.Context, material domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialRepository) DeleteMaterial(ctx context.Context, materialID string) error {
	args := m.Called(ctx, materialID)
	return args.Error(0)
}

func (m *MockMaterialRepository) FindMaterialByID(ctx context.Context, materialID string) (*domain.Material, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Material), args.Error(1)
}

func superAdminPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.NewString(), Username: "boss", Role: domain.RoleSuperAdmin}
}

func normalAdminPrincipal() domain.Principal {
	return domain.Principal{UserID: uuid.NewString(), Username: "clerk", Role: domain.RoleNormalAdmin}
}

// --- Test Suite ---
type MaterialServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMaterialRepository
	service  portssvc.MaterialSvcFacade
}

func (suite *MaterialServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMaterialRepository)
	suite.service = services.NewMaterialService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *MaterialServiceTestSuite) TestCreateMaterial_Success() {
	ctx := context.Background()
	principal := normalAdminPrincipal()
	req := dto.CreateMaterialRequest{
		Name:       "  Copper  ",
		PricePerKg: decimal.NewFromInt(50),
	}

	suite.mockRepo.On("SaveMaterial", ctx, mock.MatchedBy(func(m domain.Material) bool {
		return m.Name == "Copper" && m.Unit == domain.DefaultUnit && m.CreatedBy == principal.UserID && m.MaterialID != ""
	})).Return(nil).Once()

	material, err := suite.service.CreateMaterial(ctx, req, principal)

	suite.Require().NoError(err)
	suite.Require().NotNil(material)
	suite.Equal("Copper", material.Name)
	suite.Equal("kg", material.Unit)
	suite.True(material.PricePerKg.Equal(req.PricePerKg))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaterialServiceTestSuite) TestCreateMaterial_BlankName() {
	ctx := context.Background()

	material, err := suite.service.CreateMaterial(ctx, dto.CreateMaterialRequest{
		Name:       "   ",
		PricePerKg: decimal.NewFromInt(10),
	}, normalAdminPrincipal())

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMaterial")
}

func (suite *MaterialServiceTestSuite) TestCreateMaterial_NegativePrice() {
	ctx := context.Background()

	material, err := suite.service.CreateMaterial(ctx, dto.CreateMaterialRequest{
		Name:       "Copper",
		PricePerKg: decimal.NewFromInt(-1),
	}, normalAdminPrincipal())

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MaterialServiceTestSuite) TestCreateMaterial_DuplicateName() {
	ctx := context.Background()

	suite.mockRepo.On("SaveMaterial", ctx, mock.AnythingOfType("domain.Material")).Return(apperrors.ErrDuplicate).Once()

	material, err := suite.service.CreateMaterial(ctx, dto.CreateMaterialRequest{
		Name:       "Copper",
		PricePerKg: decimal.NewFromInt(50),
	}, normalAdminPrincipal())

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaterialServiceTestSuite) TestUpdateMaterial_PartialUpdate() {
	ctx := context.Background()
	principal := normalAdminPrincipal()
	materialID := uuid.NewString()
	existing := &domain.Material{
		MaterialID: materialID,
		Name:       "Copper",
		PricePerKg: decimal.NewFromInt(50),
		Unit:       "kg",
	}
	newPrice := decimal.NewFromInt(55)

	suite.mockRepo.On("FindMaterialByID", ctx, materialID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateMaterial", ctx, mock.MatchedBy(func(m domain.Material) bool {
		return m.Name == "Copper" && m.PricePerKg.Equal(newPrice) && m.LastUpdatedBy == principal.UserID
	})).Return(nil).Once()

	material, err := suite.service.UpdateMaterial(ctx, materialID, dto.UpdateMaterialRequest{
		PricePerKg: &newPrice,
	}, principal)

	suite.Require().NoError(err)
	suite.Require().NotNil(material)
	suite.True(material.PricePerKg.Equal(newPrice))
	suite.Equal("Copper", material.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaterialServiceTestSuite) TestUpdateMaterial_NotFound() {
	ctx := context.Background()
	materialID := uuid.NewString()

	suite.mockRepo.On("FindMaterialByID", ctx, materialID).Return(nil, apperrors.ErrNotFound).Once()

	material, err := suite.service.UpdateMaterial(ctx, materialID, dto.UpdateMaterialRequest{}, normalAdminPrincipal())

	suite.Require().Error(err)
	suite.Nil(material)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateMaterial")
}

func (suite *MaterialServiceTestSuite) TestDeleteMaterial_SuperAdmin() {
	ctx := context.Background()
	materialID := uuid.NewString()

	suite.mockRepo.On("DeleteMaterial", ctx, materialID).Return(nil).Once()

	err := suite.service.DeleteMaterial(ctx, materialID, superAdminPrincipal())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaterialServiceTestSuite) TestDeleteMaterial_ForbiddenForNormalAdmin() {
	ctx := context.Background()

	err := suite.service.DeleteMaterial(ctx, uuid.NewString(), normalAdminPrincipal())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteMaterial")
}

func (suite *MaterialServiceTestSuite) TestListMaterials_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListMaterials", ctx).Return(nil, nil).Once()

	materials, err := suite.service.ListMaterials(ctx)

	suite.Require().NoError(err)
	suite.NotNil(materials)
	suite.Empty(materials)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaterialServiceTestSuite) TestListMaterials_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListMaterials", ctx).Return(nil, expectedErr).Once()

	materials, err := suite.service.ListMaterials(ctx)

	suite.Require().Error(err)
	suite.Nil(materials)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestMaterialService(t *testing.T) {
	suite.Run(t, new(MaterialServiceTestSuite))
}

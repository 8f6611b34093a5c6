package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/core/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) MarkCategoryDeleted(ctx context.Context, userID, categoryID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, categoryID, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
	userID   string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
	suite.userID = "user-1"
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Groceries", Color: "#22c55e", Budget: decimal.NewFromInt(500)}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.UserID == suite.userID && c.Name == "Groceries" && c.Color == "#22c55e" &&
			c.Budget.Equal(req.Budget) && c.CategoryID != ""
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.Equal("Groceries", category.Name)
	suite.True(category.TotalSpent.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_NegativeBudget() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{Name: "Bad", Color: "#000000", Budget: decimal.NewFromInt(-1)}

	category, err := suite.service.CreateCategory(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory")
}

func (suite *CategoryServiceTestSuite) TestListCategories_Success() {
	ctx := context.Background()
	expected := []domain.Category{
		{CategoryID: "c1", UserID: suite.userID, Name: "Dining", TransactionCount: 3, TotalSpent: decimal.NewFromInt(120)},
		{CategoryID: "c2", UserID: suite.userID, Name: "Travel"},
	}

	suite.mockRepo.On("FindCategories", ctx, suite.userID).Return(expected, nil).Once()

	categories, err := suite.service.ListCategories(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expected, categories)
}

func (suite *CategoryServiceTestSuite) TestListCategories_RepoError() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategories", ctx, suite.userID).Return(nil, assert.AnError).Once()

	categories, err := suite.service.ListCategories(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(categories)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CategoryServiceTestSuite) TestGetCategoryByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindCategoryByID", ctx, suite.userID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	category, err := suite.service.GetCategoryByID(ctx, suite.userID, "missing")

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialMerge() {
	ctx := context.Background()
	existing := &domain.Category{
		CategoryID: "c1",
		UserID:     suite.userID,
		Name:       "Dining",
		Color:      "#f97316",
		Budget:     decimal.NewFromInt(200),
	}
	newName := "Dining Out"

	suite.mockRepo.On("FindCategoryByID", ctx, suite.userID, "c1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == newName && c.Color == "#f97316" && c.Budget.Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, suite.userID, "c1", dto.UpdateCategoryRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NegativeBudget() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: "c1", UserID: suite.userID, Name: "Dining"}
	negative := decimal.NewFromInt(-50)

	suite.mockRepo.On("FindCategoryByID", ctx, suite.userID, "c1").Return(existing, nil).Once()

	category, err := suite.service.UpdateCategory(ctx, suite.userID, "c1", dto.UpdateCategoryRequest{Budget: &negative})

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory")
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()

	suite.mockRepo.On("MarkCategoryDeleted", ctx, suite.userID, "c1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, "c1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("MarkCategoryDeleted", ctx, suite.userID, "ghost", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

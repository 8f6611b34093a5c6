package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cardwise/cardwise_backend/internal/apperrors"
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	portssvc "github.com/cardwise/cardwise_backend/internal/core/ports/services"
	"github.com/cardwise/cardwise_backend/internal/dto"
	"github.com/cardwise/cardwise_backend/internal/handlers"
	"github.com/cardwise/cardwise_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCategoryService
	jwtSecret   string
}

func (suite *CategoryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cardwise-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockCategoryService)

	// Register the full route tree the way main does; only the category
	// facade is backed by a mock, and IsProduction keeps swagger out.
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{Category: suite.mockService})
}

func (suite *CategoryHandlerTestSuite) authedRequest(method, url string, body any) *httptest.ResponseRecorder {
	userID := "user-1"
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	expected := []domain.Category{
		{
			CategoryID:       uuid.NewString(),
			UserID:           "user-1",
			Name:             "Groceries",
			Color:            "#22c55e",
			Budget:           decimal.NewFromInt(500),
			TransactionCount: 7,
			TotalSpent:       decimal.NewFromInt(312),
		},
	}

	suite.mockService.On("ListCategories", mock.Anything, "user-1").Return(expected, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/categories", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Groceries", resp[0].Name)
	suite.Equal(7, resp[0].TransactionCount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Unauthenticated() {
	req, err := http.NewRequest(http.MethodGet, "/api/categories", nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListCategories")
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	req := dto.CreateCategoryRequest{Name: "Travel", Color: "#3b82f6", Budget: decimal.NewFromInt(1000)}
	created := &domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     "user-1",
		Name:       req.Name,
		Color:      req.Color,
		Budget:     req.Budget,
	}

	suite.mockService.On("CreateCategory", mock.Anything, "user-1", mock.MatchedBy(func(r dto.CreateCategoryRequest) bool {
		return r.Name == "Travel" && r.Color == "#3b82f6"
	})).Return(created, nil).Once()

	w := suite.authedRequest(http.MethodPost, "/api/categories", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.CategoryID, resp.ID)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_InvalidBody() {
	// Color must be a hex color.
	req := map[string]string{"name": "Bad", "color": "not-a-color"}

	w := suite.authedRequest(http.MethodPost, "/api/categories", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateCategory")
}

func (suite *CategoryHandlerTestSuite) TestGetCategory_NotFound() {
	suite.mockService.On("GetCategoryByID", mock.Anything, "user-1", "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/categories/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NoContent() {
	suite.mockService.On("DeleteCategory", mock.Anything, "user-1", "cat-1").Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/categories/cat-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	contentapp "github.com/klassifikator/backend/internal/application/content"
	"github.com/klassifikator/backend/internal/domain/content"
)

// MockContentRepository is a testify mock of content.ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) FindByOrganization(ctx context.Context, organizationID int64) (*content.OrganizationContent, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.OrganizationContent), args.Error(1)
}

func (m *MockContentRepository) ExistsByOrganization(ctx context.Context, organizationID int64) (bool, error) {
	args := m.Called(ctx, organizationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) Save(ctx context.Context, c *content.OrganizationContent) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteByOrganization(ctx context.Context, organizationID int64) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

// MockProductRepository is a testify mock of content.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*content.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Product), args.Error(1)
}

func (m *MockProductRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]content.Product, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Product), args.Error(1)
}

func (m *MockProductRepository) FindActiveByOrganization(ctx context.Context, organizationID int64) ([]content.Product, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]content.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *content.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteByOrganization(ctx context.Context, organizationID int64) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

// MockPromotionRepository is a testify mock of content.PromotionRepository
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, id int64) (*content.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]content.Promotion, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindActiveByOrganization(ctx context.Context, organizationID int64, day time.Time) ([]content.Promotion, error) {
	args := m.Called(ctx, organizationID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) Save(ctx context.Context, p *content.Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromotionRepository) DeleteByOrganization(ctx context.Context, organizationID int64) error {
	args := m.Called(ctx, organizationID)
	return args.Error(0)
}

func newContentTestServer(products *MockProductRepository, promotions *MockPromotionRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	svc := contentapp.NewService(new(MockContentRepository), products, promotions, noopCache{})
	h := NewContentHandler(svc)
	h.RegisterRoutes(engine.Group("/api/v1"))

	return engine
}

func TestContentHandler_ListOrganizationProducts(t *testing.T) {
	stul, _ := content.NewProduct(1, "Стул", decimal.NewFromInt(10))
	stul.ID = 4

	t.Run("activeOnly filters to active products", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("FindActiveByOrganization", mock.Anything, int64(1)).
			Return([]content.Product{*stul}, nil)

		engine := newContentTestServer(products, new(MockPromotionRepository))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/content/organization/1/products?activeOnly=true", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Стул")
		assert.Contains(t, w.Body.String(), `"isActive":true`)
		products.AssertExpectations(t)
	})

	t.Run("without activeOnly lists everything", func(t *testing.T) {
		products := new(MockProductRepository)
		products.On("FindByOrganization", mock.Anything, int64(1)).
			Return([]content.Product{*stul}, nil)

		engine := newContentTestServer(products, new(MockPromotionRepository))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/content/organization/1/products", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		products.AssertExpectations(t)
	})

	t.Run("rejects non-numeric organization ID", func(t *testing.T) {
		engine := newContentTestServer(new(MockProductRepository), new(MockPromotionRepository))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/content/organization/abc/products", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContentHandler_ListOrganizationPromotions(t *testing.T) {
	sale, _ := content.NewPromotion(1, "Скидка на ТО")
	sale.ID = 9

	promotions := new(MockPromotionRepository)
	promotions.On("FindActiveByOrganization", mock.Anything, int64(1), mock.AnythingOfType("time.Time")).
		Return([]content.Promotion{*sale}, nil)

	engine := newContentTestServer(new(MockProductRepository), promotions)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/content/organization/1/promotions?activeOnly=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Скидка на ТО")
	promotions.AssertExpectations(t)
}

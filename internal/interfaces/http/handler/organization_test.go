package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	landingapp "github.com/klassifikator/backend/internal/application/landing"
	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
	"github.com/klassifikator/backend/internal/interfaces/http/dto"
)

// MockOrganizationRepository is a testify mock of landing.OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id int64) (*landing.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*landing.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindAll(ctx context.Context) ([]landing.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]landing.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindByStatus(ctx context.Context, status landing.OrganizationStatus) ([]landing.Organization, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]landing.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) Save(ctx context.Context, org *landing.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// noopCache satisfies the application cache interfaces without storing anything
type noopCache struct{}

func (noopCache) Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (noopCache) Set(ctx context.Context, bucket, key string, value interface{}) error {
	return nil
}

func (noopCache) InvalidateBucket(ctx context.Context, bucket string) error {
	return nil
}

func newOrganizationTestServer(repo *MockOrganizationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	h := NewOrganizationHandler(landingapp.NewOrganizationService(repo, noopCache{}))
	h.RegisterRoutes(engine.Group("/api/v1"))

	return engine
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOrganizationHandler_Create(t *testing.T) {
	repo := new(MockOrganizationRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*landing.Organization")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*landing.Organization).ID = 7
		}).
		Return(nil)

	engine := newOrganizationTestServer(repo)

	body, _ := json.Marshal(map[string]string{
		"name":     "Автосервис Мотор",
		"category": "Ремонт",
		"phone":    "+7 900 000-00-00",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	repo.AssertExpectations(t)
}

func TestOrganizationHandler_Create_MissingName(t *testing.T) {
	engine := newOrganizationTestServer(new(MockOrganizationRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations", bytes.NewReader([]byte(`{"category":"Ремонт"}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
}

func TestOrganizationHandler_GetByID(t *testing.T) {
	t.Run("returns organization", func(t *testing.T) {
		org, _ := landing.NewOrganization("Автосервис Мотор", "Ремонт")
		org.ID = 7

		repo := new(MockOrganizationRepository)
		repo.On("FindByID", mock.Anything, int64(7)).Return(org, nil)

		engine := newOrganizationTestServer(repo)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/organizations/7", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Автосервис Мотор")
	})

	t.Run("maps missing organization to 404", func(t *testing.T) {
		repo := new(MockOrganizationRepository)
		repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		engine := newOrganizationTestServer(repo)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/organizations/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("rejects non-numeric ID", func(t *testing.T) {
		engine := newOrganizationTestServer(new(MockOrganizationRepository))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/organizations/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrganizationHandler_Delete(t *testing.T) {
	repo := new(MockOrganizationRepository)
	repo.On("ExistsByID", mock.Anything, int64(7)).Return(true, nil)
	repo.On("Delete", mock.Anything, int64(7)).Return(nil)

	engine := newOrganizationTestServer(repo)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/organizations/7", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}

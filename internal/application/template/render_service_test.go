package template

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	appcontent "github.com/klassifikator/backend/internal/application/content"
	contentdomain "github.com/klassifikator/backend/internal/domain/content"
	landingdomain "github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
	domain "github.com/klassifikator/backend/internal/domain/template"
)

// MockTemplateRepository is a mock implementation of domain.Repository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) FindByID(ctx context.Context, id int64) (*domain.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindAll(ctx context.Context) ([]domain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Template), args.Error(1)
}

func (m *MockTemplateRepository) FindActive(ctx context.Context) ([]domain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Template), args.Error(1)
}

func (m *MockTemplateRepository) Save(ctx context.Context, t *domain.Template) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLandingProvider is a mock implementation of LandingProvider
type MockLandingProvider struct {
	mock.Mock
}

func (m *MockLandingProvider) LandingBySubdomain(ctx context.Context, subdomain string) (*landingdomain.Landing, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*landingdomain.Landing), args.Error(1)
}

func (m *MockLandingProvider) LandingByDomain(ctx context.Context, domain string) (*landingdomain.Landing, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*landingdomain.Landing), args.Error(1)
}

func (m *MockLandingProvider) Organization(ctx context.Context, id int64) (*landingdomain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*landingdomain.Organization), args.Error(1)
}

// MockContentProvider is a mock implementation of ContentProvider
type MockContentProvider struct {
	mock.Mock
}

func (m *MockContentProvider) FullContent(ctx context.Context, organizationID int64) (*appcontent.FullContent, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appcontent.FullContent), args.Error(1)
}

func newRenderFixture() (*RenderService, *MockTemplateRepository, *MockLandingProvider, *MockContentProvider) {
	repo := new(MockTemplateRepository)
	landings := new(MockLandingProvider)
	contents := new(MockContentProvider)
	svc := NewRenderService(repo, landings, contents, "volzhck.ru", zap.NewNop())
	return svc, repo, landings, contents
}

func activeLanding() *landingdomain.Landing {
	l := &landingdomain.Landing{
		OrganizationID: 5,
		Domain:         "avtoservis.volzhck.ru",
		Subdomain:      "avtoservis",
		TemplateID:     1,
		Status:         landingdomain.LandingStatusActive,
	}
	l.ID = 9
	return l
}

func TestRenderByHost_SubdomainOfBaseDomain(t *testing.T) {
	svc, repo, landings, contents := newRenderFixture()
	ctx := context.Background()

	tpl := &domain.Template{Version: 1, HTMLStructure: `<h1>{{content.h1}}</h1>`}
	tpl.ID = 1

	landings.On("LandingBySubdomain", ctx, "avtoservis").Return(activeLanding(), nil)
	landings.On("Organization", ctx, int64(5)).Return(&landingdomain.Organization{Name: "Автосервис"}, nil)
	contents.On("FullContent", ctx, int64(5)).Return(&appcontent.FullContent{
		Content: &contentdomain.OrganizationContent{H1: "Ремонт в Волжском"},
	}, nil)
	repo.On("FindByID", ctx, int64(1)).Return(tpl, nil)

	result, err := svc.RenderByHost(ctx, "avtoservis.volzhck.ru:8083")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "<h1>Ремонт в Волжском</h1>", result.HTML)
	landings.AssertNotCalled(t, "LandingByDomain")
}

func TestRenderByHost_CustomDomain(t *testing.T) {
	svc, repo, landings, contents := newRenderFixture()
	ctx := context.Background()

	l := activeLanding()
	l.Domain = "avtoservis34.ru"

	tpl := &domain.Template{Version: 1, HTMLStructure: `ok`}
	tpl.ID = 1

	landings.On("LandingByDomain", ctx, "avtoservis34.ru").Return(l, nil)
	landings.On("Organization", ctx, int64(5)).Return(&landingdomain.Organization{}, nil)
	contents.On("FullContent", ctx, int64(5)).Return(&appcontent.FullContent{}, nil)
	repo.On("FindByID", ctx, int64(1)).Return(tpl, nil)

	result, err := svc.RenderByHost(ctx, "avtoservis34.ru")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	landings.AssertNotCalled(t, "LandingBySubdomain")
}

func TestRenderByHost_BareBaseDomainNotFound(t *testing.T) {
	svc, _, _, _ := newRenderFixture()

	result, err := svc.RenderByHost(context.Background(), "volzhck.ru")

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Nil(t, result)
}

func TestRender_DraftServesPlaceholder(t *testing.T) {
	svc, repo, landings, _ := newRenderFixture()
	ctx := context.Background()

	l := activeLanding()
	l.Status = landingdomain.LandingStatusDraft

	landings.On("LandingBySubdomain", ctx, "avtoservis").Return(l, nil)

	result, err := svc.RenderBySubdomain(ctx, "avtoservis")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	assert.Contains(t, result.HTML, "Сайт готовится к запуску")
	repo.AssertNotCalled(t, "FindByID")
}

func TestRender_InjectsAssets(t *testing.T) {
	svc, repo, landings, contents := newRenderFixture()
	ctx := context.Background()

	tpl := &domain.Template{
		Version:       1,
		HTMLStructure: `<head><link rel="stylesheet" href="styles.css"></head><body><script src="order-form.js"></script></body>`,
		CSSStyles:     "body { margin: 0; }",
		JSScripts:     "console.log('order');",
	}
	tpl.ID = 1

	landings.On("LandingBySubdomain", ctx, "avtoservis").Return(activeLanding(), nil)
	landings.On("Organization", ctx, int64(5)).Return(&landingdomain.Organization{}, nil)
	contents.On("FullContent", ctx, int64(5)).Return(&appcontent.FullContent{}, nil)
	repo.On("FindByID", ctx, int64(1)).Return(tpl, nil)

	result, err := svc.RenderBySubdomain(ctx, "avtoservis")

	assert.NoError(t, err)
	assert.Contains(t, result.HTML, "<style>\nbody { margin: 0; }\n</style>")
	assert.Contains(t, result.HTML, "<script>\nconsole.log('order');\n</script>")
	assert.NotContains(t, result.HTML, `href="styles.css"`)
	assert.NotContains(t, result.HTML, `src="order-form.js"`)
}

func TestCompiledTemplate_RecompilesOnVersionBump(t *testing.T) {
	svc, _, _, _ := newRenderFixture()

	tpl := &domain.Template{Version: 1, HTMLStructure: `v1`}
	tpl.ID = 1

	first, err := svc.compiledTemplate(tpl)
	assert.NoError(t, err)

	// same version hits the cache even when the source text changed
	tpl.HTMLStructure = `v1-edited`
	cached, err := svc.compiledTemplate(tpl)
	assert.NoError(t, err)
	assert.Same(t, first, cached)

	tpl.BumpVersion()
	tpl.HTMLStructure = `v2`
	recompiled, err := svc.compiledTemplate(tpl)
	assert.NoError(t, err)
	assert.NotSame(t, first, recompiled)

	out, err := recompiled.Exec(nil)
	assert.NoError(t, err)
	assert.Equal(t, "v2", out)
}

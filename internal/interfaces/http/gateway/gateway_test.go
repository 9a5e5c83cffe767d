package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/klassifikator/backend/internal/infrastructure/config"
)

// echoBackend answers with its own name and the Host header it received
func echoBackend(t *testing.T, name string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Backend", name)
		w.Header().Set("X-Seen-Host", r.Host)
		w.WriteHeader(http.StatusOK)
	}))
}

func newTestGateway(t *testing.T) (*Gateway, *httptest.Server, *httptest.Server, *httptest.Server) {
	t.Helper()

	landing := echoBackend(t, "landing")
	content := echoBackend(t, "content")
	template := echoBackend(t, "template")
	t.Cleanup(landing.Close)
	t.Cleanup(content.Close)
	t.Cleanup(template.Close)

	g, err := New(&config.ServicesConfig{
		LandingURL:     landing.URL,
		ContentURL:     content.URL,
		TemplateURL:    template.URL,
		MediaURL:       template.URL,
		IntegrationURL: template.URL,
		OrderURL:       template.URL,
	}, zap.NewNop())
	require.NoError(t, err)

	return g, landing, content, template
}

func TestGateway_RoutesByPathPrefix(t *testing.T) {
	g, _, _, _ := newTestGateway(t)

	cases := map[string]string{
		"/api/v1/organizations":               "landing",
		"/api/v1/organizations/7":             "landing",
		"/api/v1/landings/by-domain/x":        "landing",
		"/api/v1/content/organization/7/full": "content",
		"/api/v1/products":                    "content",
		"/api/v1/promotions/3":                "content",
		"/api/v1/templates/1":                 "template",
	}

	for path, backend := range cases {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, backend, w.Header().Get("X-Backend"), "path %s", path)
	}
}

func TestGateway_FallsBackToPageRendering(t *testing.T) {
	g, _, _, _ := newTestGateway(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "avtoservis.volzhck.ru"
	g.ServeHTTP(w, req)

	assert.Equal(t, "template", w.Header().Get("X-Backend"))
	assert.Equal(t, "avtoservis.volzhck.ru", w.Header().Get("X-Seen-Host"),
		"the original Host header must reach the template service")
}

func TestGateway_PrefixMatchesOnSegmentBoundary(t *testing.T) {
	g, _, _, _ := newTestGateway(t)

	// /api/v1/contents is not the content prefix; it falls through to
	// page rendering
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/contentious", nil))

	assert.Equal(t, "template", w.Header().Get("X-Backend"))
}

func TestGateway_HealthAnsweredLocally(t *testing.T) {
	g, _, _, _ := newTestGateway(t)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Backend"))
	assert.Contains(t, w.Body.String(), `"gateway"`)
}

func TestGateway_UnreachableBackendAnswers503(t *testing.T) {
	g, err := New(&config.ServicesConfig{
		LandingURL:     "http://127.0.0.1:1",
		ContentURL:     "http://127.0.0.1:1",
		TemplateURL:    "http://127.0.0.1:1",
		MediaURL:       "http://127.0.0.1:1",
		IntegrationURL: "http://127.0.0.1:1",
		OrderURL:       "http://127.0.0.1:1",
	}, zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_UNAVAILABLE")
}

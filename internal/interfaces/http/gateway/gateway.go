package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/klassifikator/backend/internal/infrastructure/config"
	"github.com/klassifikator/backend/internal/interfaces/http/dto"
)

// Gateway is the public entry point of the platform. API calls are proxied
// to the owning service by path prefix; everything else is treated as a
// landing page request and proxied to the template service, which resolves
// the page by Host header.
type Gateway struct {
	rules    []rule
	fallback *httputil.ReverseProxy
	logger   *zap.Logger
}

type rule struct {
	prefix string
	proxy  *httputil.ReverseProxy
}

// New creates a Gateway from the configured service URLs
func New(cfg *config.ServicesConfig, logger *zap.Logger) (*Gateway, error) {
	targets := map[string]string{
		"/api/v1/organizations": cfg.LandingURL,
		"/api/v1/landings":      cfg.LandingURL,
		"/api/v1/content":       cfg.ContentURL,
		"/api/v1/products":      cfg.ContentURL,
		"/api/v1/promotions":    cfg.ContentURL,
		"/api/v1/templates":     cfg.TemplateURL,
		"/api/v1/render":        cfg.TemplateURL,
		"/api/v1/media":         cfg.MediaURL,
		"/api/v1/integration":   cfg.IntegrationURL,
		"/api/v1/orders":        cfg.OrderURL,
	}

	g := &Gateway{logger: logger}
	for prefix, raw := range targets {
		proxy, err := g.newProxy(raw)
		if err != nil {
			return nil, err
		}
		g.rules = append(g.rules, rule{prefix: prefix, proxy: proxy})
	}

	// Longest prefix wins
	sort.Slice(g.rules, func(i, j int) bool {
		return len(g.rules[i].prefix) > len(g.rules[j].prefix)
	})

	fallback, err := g.newProxy(cfg.TemplateURL)
	if err != nil {
		return nil, err
	}
	g.fallback = fallback

	return g, nil
}

// newProxy builds a reverse proxy for one backend service. The original
// Host header is preserved so the template service can resolve landings.
func (g *Gateway) newProxy(rawURL string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		g.logger.Warn("Backend service unreachable",
			zap.String("target", target.String()),
			zap.String("path", r.URL.Path),
			zap.Error(err))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(dto.NewErrorResponse(
			dto.ErrCodeUnavailable,
			"Service temporarily unavailable",
		))
	}
	return proxy, nil
}

// ServeHTTP routes a request to the owning backend service
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/health" {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.NewSuccessResponse(map[string]string{
			"status":  "ok",
			"service": "gateway",
		}))
		return
	}

	for _, rule := range g.rules {
		if matchesPrefix(r.URL.Path, rule.prefix) {
			rule.proxy.ServeHTTP(w, r)
			return
		}
	}

	g.fallback.ServeHTTP(w, r)
}

// matchesPrefix reports whether path falls under prefix at a segment boundary
func matchesPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/' || path[len(prefix)] == '?'
}

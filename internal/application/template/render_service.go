package template

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/mailgun/raymond/v2"
	"go.uber.org/zap"

	appcontent "github.com/klassifikator/backend/internal/application/content"
	landingdomain "github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
	domain "github.com/klassifikator/backend/internal/domain/template"
)

// LandingProvider resolves landings and their organizations
type LandingProvider interface {
	LandingBySubdomain(ctx context.Context, subdomain string) (*landingdomain.Landing, error)
	LandingByDomain(ctx context.Context, domain string) (*landingdomain.Landing, error)
	Organization(ctx context.Context, id int64) (*landingdomain.Organization, error)
}

// ContentProvider fetches the aggregated page content of an organization
type ContentProvider interface {
	FullContent(ctx context.Context, organizationID int64) (*appcontent.FullContent, error)
}

// RenderResult is a rendered page plus the HTTP status it should be served with
type RenderResult struct {
	HTML       string
	StatusCode int
}

const draftPlaceholder = `<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Сайт готовится к запуску</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 80px;">
<h1>Сайт готовится к запуску</h1>
<p>Страница ещё не опубликована. Загляните позже.</p>
</body>
</html>`

const stylesLinkTag = `<link rel="stylesheet" href="styles.css">`
const orderFormScriptTag = `<script src="order-form.js"></script>`

// RenderService assembles public landing pages. Compiled templates are
// cached by template ID and version, so an edit that bumps the version
// invalidates the stale compiled form without any explicit flush.
type RenderService struct {
	templateRepo domain.Repository
	landings     LandingProvider
	contents     ContentProvider
	baseDomain   string
	logger       *zap.Logger

	mu       sync.RWMutex
	compiled map[string]*raymond.Template
}

// NewRenderService creates a new RenderService
func NewRenderService(
	templateRepo domain.Repository,
	landings LandingProvider,
	contents ContentProvider,
	baseDomain string,
	logger *zap.Logger,
) *RenderService {
	return &RenderService{
		templateRepo: templateRepo,
		landings:     landings,
		contents:     contents,
		baseDomain:   strings.ToLower(strings.TrimSpace(baseDomain)),
		logger:       logger,
		compiled:     make(map[string]*raymond.Template),
	}
}

// RenderByHost resolves the request host to a landing and renders its page
func (s *RenderService) RenderByHost(ctx context.Context, host string) (*RenderResult, error) {
	l, err := s.resolveLanding(ctx, host)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, l)
}

// RenderBySubdomain renders the landing registered under the given subdomain
func (s *RenderService) RenderBySubdomain(ctx context.Context, subdomain string) (*RenderResult, error) {
	l, err := s.landings.LandingBySubdomain(ctx, strings.ToLower(strings.TrimSpace(subdomain)))
	if err != nil {
		return nil, err
	}
	return s.render(ctx, l)
}

func (s *RenderService) resolveLanding(ctx context.Context, host string) (*landingdomain.Landing, error) {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	if sub, ok := strings.CutSuffix(host, "."+s.baseDomain); ok {
		return s.landings.LandingBySubdomain(ctx, sub)
	}
	if host == s.baseDomain {
		return nil, shared.ErrNotFound
	}
	return s.landings.LandingByDomain(ctx, host)
}

func (s *RenderService) render(ctx context.Context, l *landingdomain.Landing) (*RenderResult, error) {
	if !l.IsActive() {
		return &RenderResult{HTML: draftPlaceholder, StatusCode: http.StatusServiceUnavailable}, nil
	}

	tpl, err := s.templateRepo.FindByID(ctx, l.TemplateID)
	if err != nil {
		return nil, err
	}

	org, err := s.landings.Organization(ctx, l.OrganizationID)
	if err != nil {
		return nil, err
	}

	full, err := s.contents.FullContent(ctx, l.OrganizationID)
	if err != nil {
		return nil, err
	}

	compiled, err := s.compiledTemplate(tpl)
	if err != nil {
		return nil, err
	}

	html, err := compiled.Exec(map[string]interface{}{
		"organization": org,
		"landing":      l,
		"content":      full.Content,
		"products":     full.Products,
		"promotions":   full.Promotions,
	})
	if err != nil {
		s.logger.Error("template execution failed",
			zap.Int64("template_id", tpl.ID),
			zap.Int("template_version", tpl.Version),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to render page")
	}

	html = injectAssets(html, tpl)
	return &RenderResult{HTML: html, StatusCode: http.StatusOK}, nil
}

// compiledTemplate returns the parsed form of a template, compiling and
// caching it on first use of each (id, version) pair
func (s *RenderService) compiledTemplate(tpl *domain.Template) (*raymond.Template, error) {
	key := fmt.Sprintf("%d:%d", tpl.ID, tpl.Version)

	s.mu.RLock()
	compiled, ok := s.compiled[key]
	s.mu.RUnlock()
	if ok {
		return compiled, nil
	}

	compiled, err := raymond.Parse(tpl.HTMLStructure)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_STATE", "Template markup does not parse: "+err.Error())
	}

	s.mu.Lock()
	for k := range s.compiled {
		if strings.HasPrefix(k, fmt.Sprintf("%d:", tpl.ID)) && k != key {
			delete(s.compiled, k)
		}
	}
	s.compiled[key] = compiled
	s.mu.Unlock()

	return compiled, nil
}

// ClearCompiledCache drops every compiled template. Version-keyed entries
// already expire on edit; this is the manual escape hatch for operators.
func (s *RenderService) ClearCompiledCache() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.compiled)
	s.compiled = make(map[string]*raymond.Template)
	return n
}

// injectAssets inlines the template's CSS and JS in place of the static
// asset tags the markup references
func injectAssets(html string, tpl *domain.Template) string {
	if tpl.CSSStyles != "" {
		html = strings.Replace(html, stylesLinkTag, "<style>\n"+tpl.CSSStyles+"\n</style>", 1)
	}
	if tpl.JSScripts != "" {
		html = strings.Replace(html, orderFormScriptTag, "<script>\n"+tpl.JSScripts+"\n</script>", 1)
	}
	return html
}

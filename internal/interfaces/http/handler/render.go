package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	templateapp "github.com/klassifikator/backend/internal/application/template"
	"github.com/klassifikator/backend/internal/domain/shared"
)

const htmlContentType = "text/html; charset=utf-8"

// RenderHandler serves rendered landing pages
type RenderHandler struct {
	BaseHandler
	renderer *templateapp.RenderService
}

// NewRenderHandler creates a new RenderHandler
func NewRenderHandler(renderer *templateapp.RenderService) *RenderHandler {
	return &RenderHandler{renderer: renderer}
}

// RegisterRoutes registers the render preview route on the API group
func (h *RenderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/render/:subdomain", h.RenderBySubdomain)
	rg.POST("/templates/cache/clear", h.ClearCache)
}

// RegisterPublic registers the catch-all page route on the engine.
// Any request that does not match an API route is resolved by Host header.
func (h *RenderHandler) RegisterPublic(engine *gin.Engine) {
	engine.NoRoute(h.ServePage)
}

// ServePage renders the landing page for the request's Host header
func (h *RenderHandler) ServePage(c *gin.Context) {
	result, err := h.renderer.RenderByHost(c.Request.Context(), c.Request.Host)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Data(result.StatusCode, htmlContentType, []byte(result.HTML))
}

// RenderBySubdomain renders the landing page of a subdomain, used for previews
func (h *RenderHandler) RenderBySubdomain(c *gin.Context) {
	result, err := h.renderer.RenderBySubdomain(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Data(result.StatusCode, htmlContentType, []byte(result.HTML))
}

// ClearCache flushes the compiled template cache
func (h *RenderHandler) ClearCache(c *gin.Context) {
	h.Success(c, gin.H{"cleared": h.renderer.ClearCompiledCache()})
}

// renderError answers page requests with plain HTML rather than the JSON envelope
func (h *RenderHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrNotFound) {
		c.Data(http.StatusNotFound, htmlContentType, []byte("<h1>404</h1><p>Сайт не найден</p>"))
		return
	}
	c.Data(http.StatusInternalServerError, htmlContentType, []byte("<h1>500</h1><p>Внутренняя ошибка сервера</p>"))
}

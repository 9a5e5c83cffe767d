package handler

import (
	"github.com/gin-gonic/gin"

	templateapp "github.com/klassifikator/backend/internal/application/template"
)

// TemplateHandler handles template API endpoints
type TemplateHandler struct {
	BaseHandler
	templates *templateapp.Service
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templates *templateapp.Service) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// RegisterRoutes registers template routes on the API group
func (h *TemplateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/templates")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create creates a new template
func (h *TemplateHandler) Create(c *gin.Context) {
	var req templateapp.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	t, err := h.templates.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, t)
}

// List lists templates, optionally only active ones
func (h *TemplateHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	templates, err := h.templates.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, templates)
}

// GetByID returns a single template
func (h *TemplateHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	t, err := h.templates.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, t)
}

// Update overwrites a template's fields, bumping the version on structural change
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	var req templateapp.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	t, err := h.templates.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, t)
}

// Delete removes a template
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templates.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

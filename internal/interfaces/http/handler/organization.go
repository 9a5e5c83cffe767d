package handler

import (
	"github.com/gin-gonic/gin"

	landingapp "github.com/klassifikator/backend/internal/application/landing"
)

// OrganizationHandler handles organization API endpoints
type OrganizationHandler struct {
	BaseHandler
	orgs *landingapp.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(orgs *landingapp.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs}
}

// RegisterRoutes registers organization routes on the API group
func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/organizations")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// Create creates a new organization
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req landingapp.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	org, err := h.orgs.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, org)
}

// List lists organizations, optionally filtered by status
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.orgs.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orgs)
}

// GetByID returns a single organization
func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	org, err := h.orgs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, org)
}

// Update overwrites an organization's fields
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var req landingapp.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	org, err := h.orgs.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, org)
}

// Delete removes an organization
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	if err := h.orgs.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

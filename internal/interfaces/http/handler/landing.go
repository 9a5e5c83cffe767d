package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	landingapp "github.com/klassifikator/backend/internal/application/landing"
)

// LandingHandler handles landing and SEO API endpoints
type LandingHandler struct {
	BaseHandler
	landings *landingapp.LandingService
	seo      *landingapp.SeoService
}

// NewLandingHandler creates a new LandingHandler
func NewLandingHandler(landings *landingapp.LandingService, seo *landingapp.SeoService) *LandingHandler {
	return &LandingHandler{landings: landings, seo: seo}
}

// RegisterRoutes registers landing routes on the API group
func (h *LandingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/landings")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/by-domain/:domain", h.GetByDomain)
	g.GET("/by-subdomain/:subdomain", h.GetBySubdomain)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.POST("/:id/publish", h.Publish)
	g.DELETE("/:id", h.Delete)
	g.GET("/:id/seo", h.GetSeo)
	g.PUT("/:id/seo", h.SaveSeo)
	g.DELETE("/:id/seo", h.DeleteSeo)
}

// Create creates a new landing
func (h *LandingHandler) Create(c *gin.Context) {
	var req landingapp.CreateLandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	l, err := h.landings.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, l)
}

// List lists landings, optionally filtered by organization
func (h *LandingHandler) List(c *gin.Context) {
	if raw := c.Query("organizationId"); raw != "" {
		organizationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.BadRequest(c, "Invalid organization ID")
			return
		}

		landings, err := h.landings.ListByOrganization(c.Request.Context(), organizationID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, landings)
		return
	}

	landings, err := h.landings.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, landings)
}

// GetByID returns a single landing
func (h *LandingHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	l, err := h.landings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, l)
}

// GetByDomain returns the landing bound to an exact domain
func (h *LandingHandler) GetByDomain(c *gin.Context) {
	l, err := h.landings.GetByDomain(c.Request.Context(), c.Param("domain"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, l)
}

// GetBySubdomain returns the landing bound to a subdomain
func (h *LandingHandler) GetBySubdomain(c *gin.Context) {
	l, err := h.landings.GetBySubdomain(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, l)
}

// Update overwrites a landing's fields
func (h *LandingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	var req landingapp.UpdateLandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	l, err := h.landings.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, l)
}

// Publish marks a landing as ACTIVE
func (h *LandingHandler) Publish(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	l, err := h.landings.Publish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, l)
}

// Delete removes a landing
func (h *LandingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	if err := h.landings.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetSeo returns the SEO block of a landing
func (h *LandingHandler) GetSeo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	seo, err := h.seo.GetByLanding(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, seo)
}

// SaveSeo upserts the SEO block of a landing
func (h *LandingHandler) SaveSeo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	var req landingapp.SaveSeoDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	seo, err := h.seo.Save(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, seo)
}

// DeleteSeo removes the SEO block of a landing
func (h *LandingHandler) DeleteSeo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid landing ID")
		return
	}

	if err := h.seo.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	contentapp "github.com/klassifikator/backend/internal/application/content"
)

// ContentHandler handles content, product and promotion API endpoints
type ContentHandler struct {
	BaseHandler
	content *contentapp.Service
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(content *contentapp.Service) *ContentHandler {
	return &ContentHandler{content: content}
}

// RegisterRoutes registers content routes on the API group
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	content := rg.Group("/content")
	content.PUT("", h.SaveContent)

	byOrg := content.Group("/organization/:organizationId")
	byOrg.GET("", h.GetContent)
	byOrg.GET("/full", h.GetFullContent)
	byOrg.GET("/products", h.ListOrganizationProducts)
	byOrg.GET("/promotions", h.ListOrganizationPromotions)
	byOrg.PUT("/products", h.ReplaceProducts)
	byOrg.PUT("/promotions", h.ReplacePromotions)

	products := rg.Group("/products")
	products.GET("", h.ListProducts)
	products.POST("", h.CreateProduct)
	products.GET("/:id", h.GetProduct)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)

	promotions := rg.Group("/promotions")
	promotions.GET("", h.ListPromotions)
	promotions.POST("", h.CreatePromotion)
	promotions.GET("/:id", h.GetPromotion)
	promotions.PUT("/:id", h.UpdatePromotion)
	promotions.DELETE("/:id", h.DeletePromotion)
}

// organizationQuery parses the organizationId query parameter
func organizationQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("organizationId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetContent returns the content row of an organization
func (h *ContentHandler) GetContent(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	content, err := h.content.GetContent(c.Request.Context(), organizationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// GetFullContent returns the aggregated page content of an organization
func (h *ContentHandler) GetFullContent(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	full, err := h.content.GetFullContent(c.Request.Context(), organizationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, full)
}

// SaveContent upserts the content row of an organization
func (h *ContentHandler) SaveContent(c *gin.Context) {
	var req contentapp.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	content, err := h.content.SaveContent(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, content)
}

// ListProducts lists products either by explicit IDs or by organization
func (h *ContentHandler) ListProducts(c *gin.Context) {
	if raw := c.Query("ids"); raw != "" {
		ids, err := parseIDList(raw)
		if err != nil {
			h.BadRequest(c, "Invalid product ID list")
			return
		}

		products, err := h.content.ProductsByIDs(c.Request.Context(), ids)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, products)
		return
	}

	organizationID, ok := organizationQuery(c)
	if !ok {
		h.BadRequest(c, "Missing organization ID")
		return
	}

	products, err := h.content.ListProducts(c.Request.Context(), organizationID, activeOnlyQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ListOrganizationProducts lists an organization's products by path parameter
func (h *ContentHandler) ListOrganizationProducts(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	products, err := h.content.ListProducts(c.Request.Context(), organizationID, activeOnlyQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ListOrganizationPromotions lists an organization's promotions by path parameter
func (h *ContentHandler) ListOrganizationPromotions(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	promotions, err := h.content.ListPromotions(c.Request.Context(), organizationID, activeOnlyQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, promotions)
}

// activeOnlyQuery reports whether the request asks for active records only
func activeOnlyQuery(c *gin.Context) bool {
	return c.Query("activeOnly") == "true" || c.Query("active") == "true"
}

// parseIDList parses a comma-separated list of numeric IDs
func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetProduct returns a single product
func (h *ContentHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	p, err := h.content.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// CreateProduct creates a new product
func (h *ContentHandler) CreateProduct(c *gin.Context) {
	var req contentapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.content.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, p)
}

// UpdateProduct overwrites a product's fields
func (h *ContentHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req contentapp.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.content.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// DeleteProduct removes a product
func (h *ContentHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.content.DeleteProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ReplaceProducts reconciles an organization's products against the given set
func (h *ContentHandler) ReplaceProducts(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var reqs []contentapp.ProductRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.content.ReplaceProducts(c.Request.Context(), organizationID, reqs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// ListPromotions lists an organization's promotions
func (h *ContentHandler) ListPromotions(c *gin.Context) {
	organizationID, ok := organizationQuery(c)
	if !ok {
		h.BadRequest(c, "Missing organization ID")
		return
	}

	promotions, err := h.content.ListPromotions(c.Request.Context(), organizationID, activeOnlyQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, promotions)
}

// GetPromotion returns a single promotion
func (h *ContentHandler) GetPromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}

	p, err := h.content.GetPromotion(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// CreatePromotion creates a new promotion
func (h *ContentHandler) CreatePromotion(c *gin.Context) {
	var req contentapp.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.content.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, p)
}

// UpdatePromotion overwrites a promotion's fields
func (h *ContentHandler) UpdatePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}

	var req contentapp.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	p, err := h.content.UpdatePromotion(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, p)
}

// DeletePromotion removes a promotion
func (h *ContentHandler) DeletePromotion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}

	if err := h.content.DeletePromotion(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ReplacePromotions reconciles an organization's promotions against the given set
func (h *ContentHandler) ReplacePromotions(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	var reqs []contentapp.PromotionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promotions, err := h.content.ReplacePromotions(c.Request.Context(), organizationID, reqs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, promotions)
}

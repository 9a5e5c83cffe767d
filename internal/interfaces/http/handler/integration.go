package handler

import (
	"github.com/gin-gonic/gin"

	integrationapp "github.com/klassifikator/backend/internal/application/integration"
	orderdomain "github.com/klassifikator/backend/internal/domain/order"
)

// IntegrationHandler handles spreadsheet sync and notification API endpoints
type IntegrationHandler struct {
	BaseHandler
	syncs         *integrationapp.SyncService
	notifications *integrationapp.NotificationService
}

// NewIntegrationHandler creates a new IntegrationHandler
func NewIntegrationHandler(
	syncs *integrationapp.SyncService,
	notifications *integrationapp.NotificationService,
) *IntegrationHandler {
	return &IntegrationHandler{
		syncs:         syncs,
		notifications: notifications,
	}
}

// RegisterRoutes registers integration routes on the API group
func (h *IntegrationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/integration")

	syncs := g.Group("/syncs")
	syncs.POST("", h.CreateSync)
	syncs.GET("", h.ListSyncs)
	syncs.GET("/:id", h.GetSync)
	syncs.PUT("/:id", h.UpdateSync)
	syncs.DELETE("/:id", h.DeleteSync)
	syncs.POST("/:id/run", h.RunSync)
	syncs.GET("/:id/sheets", h.SheetNames)

	notifications := g.Group("/notifications")
	notifications.POST("/order", h.NotifyNewOrder)
	notifications.POST("/test/:organizationId", h.SendTestMessage)
}

// CreateSync creates a spreadsheet sync configuration
func (h *IntegrationHandler) CreateSync(c *gin.Context) {
	var req integrationapp.CreateSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sync, err := h.syncs.CreateSync(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sync)
}

// ListSyncs lists all sync configurations
func (h *IntegrationHandler) ListSyncs(c *gin.Context) {
	syncs, err := h.syncs.ListSyncs(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, syncs)
}

// GetSync returns a single sync configuration
func (h *IntegrationHandler) GetSync(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sync ID")
		return
	}

	sync, err := h.syncs.GetSync(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sync)
}

// UpdateSync overwrites a sync configuration
func (h *IntegrationHandler) UpdateSync(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sync ID")
		return
	}

	var req integrationapp.UpdateSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sync, err := h.syncs.UpdateSync(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sync)
}

// DeleteSync removes a sync configuration
func (h *IntegrationHandler) DeleteSync(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sync ID")
		return
	}

	if err := h.syncs.DeleteSync(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RunSync runs a sync immediately and returns the summary
func (h *IntegrationHandler) RunSync(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sync ID")
		return
	}

	summary, err := h.syncs.RunSync(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// SheetNames lists the sheet titles of a sync's spreadsheet
func (h *IntegrationHandler) SheetNames(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid sync ID")
		return
	}

	sync, err := h.syncs.GetSync(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	names, err := h.syncs.SheetNames(c.Request.Context(), sync.SpreadsheetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, names)
}

// NotifyNewOrder sends Telegram notifications for a freshly created order
func (h *IntegrationHandler) NotifyNewOrder(c *gin.Context) {
	var o orderdomain.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.notifications.NotifyNewOrder(c.Request.Context(), &o); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"sent": true})
}

// SendTestMessage sends a test message to an organization's Telegram bot
func (h *IntegrationHandler) SendTestMessage(c *gin.Context) {
	organizationID, ok := parseIDParam(c, "organizationId")
	if !ok {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	if err := h.notifications.SendTestMessage(c.Request.Context(), organizationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"sent": true})
}

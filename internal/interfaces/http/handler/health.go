package handler

import "github.com/gin-gonic/gin"

// HealthHandler reports service liveness
type HealthHandler struct {
	BaseHandler
	service string
}

// NewHealthHandler creates a new HealthHandler for the named service
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// Register registers the health route directly on the engine, outside the API prefix
func (h *HealthHandler) Register(engine *gin.Engine) {
	engine.GET("/health", h.Health)
}

// Health returns the service liveness status
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"service": h.service,
	})
}

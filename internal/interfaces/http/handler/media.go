package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	mediaapp "github.com/klassifikator/backend/internal/application/media"
)

// maxUploadBytes caps direct file uploads at 10MB
const maxUploadBytes = 10 << 20

// MediaHandler handles media file API endpoints
type MediaHandler struct {
	BaseHandler
	media *mediaapp.Service
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(media *mediaapp.Service) *MediaHandler {
	return &MediaHandler{media: media}
}

// RegisterRoutes registers media routes on the API group
func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/media")
	g.POST("/upload", h.Upload)
	g.POST("/upload-from-url", h.UploadFromURL)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.DELETE("/:id", h.Delete)
}

// Upload stores a multipart file upload
func (h *MediaHandler) Upload(c *gin.Context) {
	organizationID, err := strconv.ParseInt(c.PostForm("organizationId"), 10, 64)
	if err != nil || organizationID <= 0 {
		h.BadRequest(c, "Invalid organization ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		h.BadRequest(c, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}

	f, err := h.media.Upload(c.Request.Context(), mediaapp.UploadRequest{
		OrganizationID:   organizationID,
		OriginalFilename: fileHeader.Filename,
		ContentType:      fileHeader.Header.Get("Content-Type"),
		Category:         c.PostForm("category"),
		Data:             data,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, f)
}

// UploadFromURL downloads a remote file and stores it
func (h *MediaHandler) UploadFromURL(c *gin.Context) {
	var req mediaapp.UploadFromURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	f, err := h.media.UploadFromURL(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, f)
}

// List lists an organization's media files, optionally filtered by category
func (h *MediaHandler) List(c *gin.Context) {
	organizationID, ok := organizationQuery(c)
	if !ok {
		h.BadRequest(c, "Missing organization ID")
		return
	}

	files, err := h.media.ListByOrganization(c.Request.Context(), organizationID, c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, files)
}

// GetByID returns a single media file record
func (h *MediaHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid media file ID")
		return
	}

	f, err := h.media.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, f)
}

// Delete removes a media file and its stored object
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid media file ID")
		return
	}

	if err := h.media.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

package media

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/klassifikator/backend/internal/domain/media"
	"github.com/klassifikator/backend/internal/domain/shared"
	"github.com/klassifikator/backend/internal/infrastructure/storage"
)

// Cache is the subset of the cache store used by this package
type Cache interface {
	Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, bucket, key string, value interface{}) error
	InvalidateBucket(ctx context.Context, bucket string) error
}

const mediaBucket = "media"

// UploadRequest carries an in-memory file to store
type UploadRequest struct {
	OrganizationID   int64
	OriginalFilename string
	ContentType      string
	Category         string
	Data             []byte
}

// UploadFromURLRequest downloads a remote file into storage
type UploadFromURLRequest struct {
	OrganizationID int64  `json:"organizationId" binding:"required"`
	URL            string `json:"url" binding:"required,url"`
	Category       string `json:"category" binding:"max=100"`
}

// Service handles media file storage and bookkeeping
type Service struct {
	repo    domain.Repository
	storage storage.ObjectStorage
	cache   Cache
	http    *resty.Client
	logger  *zap.Logger
}

// NewService creates a new media Service
func NewService(
	repo domain.Repository,
	objectStorage storage.ObjectStorage,
	cache Cache,
	httpClient *resty.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:    repo,
		storage: objectStorage,
		cache:   cache,
		http:    httpClient,
		logger:  logger,
	}
}

// Upload stores a file in object storage and records its metadata.
// Keys are namespaced per organization and prefixed with a random UUID so
// repeated uploads of the same filename never collide.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*domain.MediaFile, error) {
	if len(req.Data) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "File is empty")
	}

	filename := sanitizeFilename(req.OriginalFilename)
	key := fmt.Sprintf("organizations/%d/%s_%s", req.OrganizationID, uuid.New().String(), filename)

	contentType := req.ContentType
	if contentType == "" {
		contentType = mimeTypeByExtension(filename)
	}

	if err := s.storage.Upload(ctx, key, req.Data, contentType); err != nil {
		return nil, shared.NewDomainError("INTEGRATION_FAILURE", "Failed to store file: "+err.Error())
	}

	f := &domain.MediaFile{
		OrganizationID:   req.OrganizationID,
		Filename:         key,
		OriginalFilename: req.OriginalFilename,
		FilePath:         s.storage.PublicURL(key),
		FileSize:         int64(len(req.Data)),
		MimeType:         contentType,
		Category:         req.Category,
	}

	if err := s.repo.Save(ctx, f); err != nil {
		// storage write already happened; clean up the orphan object
		if derr := s.storage.Delete(ctx, key); derr != nil {
			s.logger.Warn("failed to remove orphaned object after save error",
				zap.String("key", key), zap.Error(derr))
		}
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, mediaBucket)
	return f, nil
}

// UploadFromURL downloads a remote file and stores it like a direct upload
func (s *Service) UploadFromURL(ctx context.Context, req UploadFromURLRequest) (*domain.MediaFile, error) {
	resp, err := s.http.R().SetContext(ctx).Get(req.URL)
	if err != nil {
		return nil, shared.NewDomainError("INTEGRATION_FAILURE", "Failed to download file: "+err.Error())
	}
	if resp.IsError() {
		return nil, shared.NewDomainError("INTEGRATION_FAILURE",
			fmt.Sprintf("Failed to download file: status %d", resp.StatusCode()))
	}

	filename := filenameFromURL(req.URL)
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = mimeTypeByExtension(filename)
	}

	return s.Upload(ctx, UploadRequest{
		OrganizationID:   req.OrganizationID,
		OriginalFilename: filename,
		ContentType:      contentType,
		Category:         req.Category,
		Data:             resp.Body(),
	})
}

// GetByID retrieves a media file record
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.MediaFile, error) {
	key := "id:" + strconv.FormatInt(id, 10)
	var cached domain.MediaFile
	if hit, _ := s.cache.Get(ctx, mediaBucket, key, &cached); hit {
		return &cached, nil
	}

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, mediaBucket, key, f)
	return f, nil
}

// ListByOrganization retrieves an organization's media files, optionally
// filtered by category
func (s *Service) ListByOrganization(ctx context.Context, organizationID int64, category string) ([]domain.MediaFile, error) {
	if category != "" {
		return s.repo.FindByOrganizationAndCategory(ctx, organizationID, category)
	}
	return s.repo.FindByOrganization(ctx, organizationID)
}

// Delete removes a media record and its stored object. A storage failure
// is logged but does not fail the delete; the record is gone either way.
func (s *Service) Delete(ctx context.Context, id int64) error {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, f.Filename); err != nil {
		s.logger.Warn("failed to delete stored object",
			zap.String("key", f.Filename), zap.Error(err))
	}

	_ = s.cache.InvalidateBucket(ctx, mediaBucket)
	return nil
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		return "file.jpg"
	}
	return name
}

func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "download.jpg"
	}
	name := path.Base(u.Path)
	if path.Ext(name) == "" {
		name += ".jpg"
	}
	return name
}

func mimeTypeByExtension(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".pdf":
		return "application/pdf"
	case ".mp4":
		return "video/mp4"
	default:
		return "image/jpeg"
	}
}

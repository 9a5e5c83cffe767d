package clients

import (
	"context"

	"github.com/go-resty/resty/v2"

	mediadomain "github.com/klassifikator/backend/internal/domain/media"
)

// MediaClient talks to the media service
type MediaClient struct {
	http *resty.Client
}

// NewMediaClient creates a client for the media service
func NewMediaClient(baseURL string) *MediaClient {
	return &MediaClient{http: newRestyClient(baseURL)}
}

type uploadFromURLRequest struct {
	OrganizationID int64  `json:"organizationId"`
	URL            string `json:"url"`
	Category       string `json:"category"`
}

// UploadFromURL asks the media service to download and store a remote file
func (c *MediaClient) UploadFromURL(ctx context.Context, organizationID int64, fileURL, category string) (*mediadomain.MediaFile, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(uploadFromURLRequest{
			OrganizationID: organizationID,
			URL:            fileURL,
			Category:       category,
		}).
		Post("/api/v1/media/upload-from-url")
	if err != nil {
		return nil, err
	}
	var f mediadomain.MediaFile
	if err := decode(resp, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

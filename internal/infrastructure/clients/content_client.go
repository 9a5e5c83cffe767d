package clients

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	appcontent "github.com/klassifikator/backend/internal/application/content"
	contentdomain "github.com/klassifikator/backend/internal/domain/content"
)

// ContentClient talks to the content service
type ContentClient struct {
	http *resty.Client
}

// NewContentClient creates a client for the content service
func NewContentClient(baseURL string) *ContentClient {
	return &ContentClient{http: newRestyClient(baseURL)}
}

// FullContent fetches the aggregated page content of an organization
func (c *ContentClient) FullContent(ctx context.Context, organizationID int64) (*appcontent.FullContent, error) {
	resp, err := c.http.R().SetContext(ctx).
		Get(fmt.Sprintf("/api/v1/content/organization/%d/full", organizationID))
	if err != nil {
		return nil, err
	}
	var full appcontent.FullContent
	if err := decode(resp, &full); err != nil {
		return nil, err
	}
	return &full, nil
}

// SaveContent upserts the content row of an organization
func (c *ContentClient) SaveContent(ctx context.Context, req appcontent.SaveContentRequest) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Put("/api/v1/content")
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// ProductsByIDs fetches product snapshots by their IDs
func (c *ContentClient) ProductsByIDs(ctx context.Context, ids []int64) ([]contentdomain.Product, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("ids", strings.Join(parts, ",")).
		Get("/api/v1/products")
	if err != nil {
		return nil, err
	}
	var products []contentdomain.Product
	if err := decode(resp, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceProducts reconciles an organization's products against the given set
func (c *ContentClient) ReplaceProducts(ctx context.Context, organizationID int64, reqs []appcontent.ProductRequest) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(reqs).
		Put(fmt.Sprintf("/api/v1/content/organization/%d/products", organizationID))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// ReplacePromotions reconciles an organization's promotions against the given set
func (c *ContentClient) ReplacePromotions(ctx context.Context, organizationID int64, reqs []appcontent.PromotionRequest) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(reqs).
		Put(fmt.Sprintf("/api/v1/content/organization/%d/promotions", organizationID))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

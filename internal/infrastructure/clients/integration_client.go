package clients

import (
	"context"

	"github.com/go-resty/resty/v2"

	orderdomain "github.com/klassifikator/backend/internal/domain/order"
)

// IntegrationClient talks to the integration service
type IntegrationClient struct {
	http *resty.Client
}

// NewIntegrationClient creates a client for the integration service
func NewIntegrationClient(baseURL string) *IntegrationClient {
	return &IntegrationClient{http: newRestyClient(baseURL)}
}

// NotifyNewOrder forwards a captured order for Telegram notification
func (c *IntegrationClient) NotifyNewOrder(ctx context.Context, o *orderdomain.Order) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(o).
		Post("/api/v1/integration/notifications/order")
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

package clients

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	applanding "github.com/klassifikator/backend/internal/application/landing"
	landingdomain "github.com/klassifikator/backend/internal/domain/landing"
)

// LandingClient talks to the landing service
type LandingClient struct {
	http *resty.Client
}

// NewLandingClient creates a client for the landing service
func NewLandingClient(baseURL string) *LandingClient {
	return &LandingClient{http: newRestyClient(baseURL)}
}

// Organization fetches one organization by ID
func (c *LandingClient) Organization(ctx context.Context, id int64) (*landingdomain.Organization, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/api/v1/organizations/%d", id))
	if err != nil {
		return nil, err
	}
	var org landingdomain.Organization
	if err := decode(resp, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// Organizations fetches all organizations
func (c *LandingClient) Organizations(ctx context.Context) ([]landingdomain.Organization, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/v1/organizations")
	if err != nil {
		return nil, err
	}
	var orgs []landingdomain.Organization
	if err := decode(resp, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// CreateOrganization creates an organization
func (c *LandingClient) CreateOrganization(ctx context.Context, req applanding.CreateOrganizationRequest) (*landingdomain.Organization, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post("/api/v1/organizations")
	if err != nil {
		return nil, err
	}
	var org landingdomain.Organization
	if err := decode(resp, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// UpdateOrganization overwrites an organization
func (c *LandingClient) UpdateOrganization(ctx context.Context, id int64, req applanding.UpdateOrganizationRequest) (*landingdomain.Organization, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Put(fmt.Sprintf("/api/v1/organizations/%d", id))
	if err != nil {
		return nil, err
	}
	var org landingdomain.Organization
	if err := decode(resp, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization removes an organization
func (c *LandingClient) DeleteOrganization(ctx context.Context, id int64) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/api/v1/organizations/%d", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// Landing fetches one landing by ID
func (c *LandingClient) Landing(ctx context.Context, id int64) (*landingdomain.Landing, error) {
	resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/api/v1/landings/%d", id))
	if err != nil {
		return nil, err
	}
	var l landingdomain.Landing
	if err := decode(resp, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Landings fetches all landings
func (c *LandingClient) Landings(ctx context.Context) ([]landingdomain.Landing, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/v1/landings")
	if err != nil {
		return nil, err
	}
	var landings []landingdomain.Landing
	if err := decode(resp, &landings); err != nil {
		return nil, err
	}
	return landings, nil
}

// LandingByDomain fetches the landing bound to an exact domain
func (c *LandingClient) LandingByDomain(ctx context.Context, domain string) (*landingdomain.Landing, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/v1/landings/by-domain/" + url.PathEscape(domain))
	if err != nil {
		return nil, err
	}
	var l landingdomain.Landing
	if err := decode(resp, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// LandingBySubdomain fetches the landing registered under a subdomain
func (c *LandingClient) LandingBySubdomain(ctx context.Context, subdomain string) (*landingdomain.Landing, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/v1/landings/by-subdomain/" + url.PathEscape(subdomain))
	if err != nil {
		return nil, err
	}
	var l landingdomain.Landing
	if err := decode(resp, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLanding creates a landing
func (c *LandingClient) CreateLanding(ctx context.Context, req applanding.CreateLandingRequest) (*landingdomain.Landing, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post("/api/v1/landings")
	if err != nil {
		return nil, err
	}
	var l landingdomain.Landing
	if err := decode(resp, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteLanding removes a landing
func (c *LandingClient) DeleteLanding(ctx context.Context, id int64) error {
	resp, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/api/v1/landings/%d", id))
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

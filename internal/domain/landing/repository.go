package landing

import (
	"context"
)

// OrganizationRepository defines the interface for organization persistence
type OrganizationRepository interface {
	// FindByID finds an organization by its ID
	FindByID(ctx context.Context, id int64) (*Organization, error)

	// FindAll finds all organizations
	FindAll(ctx context.Context) ([]Organization, error)

	// FindByStatus finds organizations by status
	FindByStatus(ctx context.Context, status OrganizationStatus) ([]Organization, error)

	// ExistsByID checks whether an organization exists
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save creates or updates an organization
	Save(ctx context.Context, org *Organization) error

	// Delete deletes an organization
	Delete(ctx context.Context, id int64) error
}

// LandingRepository defines the interface for landing persistence
type LandingRepository interface {
	// FindByID finds a landing by its ID
	FindByID(ctx context.Context, id int64) (*Landing, error)

	// FindByDomain finds a landing by its exact domain
	FindByDomain(ctx context.Context, domain string) (*Landing, error)

	// FindBySubdomain finds a landing by its subdomain
	FindBySubdomain(ctx context.Context, subdomain string) (*Landing, error)

	// FindByOrganization finds all landings that belong to an organization
	FindByOrganization(ctx context.Context, organizationID int64) ([]Landing, error)

	// FindAll finds all landings
	FindAll(ctx context.Context) ([]Landing, error)

	// ExistsBySubdomain checks whether a landing with the subdomain exists
	ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error)

	// Save creates or updates a landing
	Save(ctx context.Context, l *Landing) error

	// Delete deletes a landing
	Delete(ctx context.Context, id int64) error
}

// SeoDataRepository defines the interface for SEO metadata persistence
type SeoDataRepository interface {
	// FindByLanding finds the SEO block for a landing
	FindByLanding(ctx context.Context, landingID int64) (*SeoData, error)

	// Save creates or updates a SEO block
	Save(ctx context.Context, seo *SeoData) error

	// DeleteByLanding deletes the SEO block for a landing
	DeleteByLanding(ctx context.Context, landingID int64) error
}

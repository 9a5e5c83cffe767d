package content

import (
	"context"
	"time"
)

// ContentRepository defines the interface for organization content persistence
type ContentRepository interface {
	// FindByOrganization finds the content row for an organization
	FindByOrganization(ctx context.Context, organizationID int64) (*OrganizationContent, error)

	// ExistsByOrganization checks whether a content row exists for an organization
	ExistsByOrganization(ctx context.Context, organizationID int64) (bool, error)

	// Save creates or updates a content row
	Save(ctx context.Context, c *OrganizationContent) error

	// DeleteByOrganization deletes the content row for an organization
	DeleteByOrganization(ctx context.Context, organizationID int64) error
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindByOrganization finds all products of an organization
	FindByOrganization(ctx context.Context, organizationID int64) ([]Product, error)

	// FindActiveByOrganization finds active products of an organization
	FindActiveByOrganization(ctx context.Context, organizationID int64) ([]Product, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id int64) error

	// DeleteByOrganization deletes all products of an organization
	DeleteByOrganization(ctx context.Context, organizationID int64) error
}

// PromotionRepository defines the interface for promotion persistence
type PromotionRepository interface {
	// FindByID finds a promotion by its ID
	FindByID(ctx context.Context, id int64) (*Promotion, error)

	// FindByOrganization finds all promotions of an organization
	FindByOrganization(ctx context.Context, organizationID int64) ([]Promotion, error)

	// FindActiveByOrganization finds promotions active on the given day
	FindActiveByOrganization(ctx context.Context, organizationID int64, day time.Time) ([]Promotion, error)

	// Save creates or updates a promotion
	Save(ctx context.Context, p *Promotion) error

	// Delete deletes a promotion
	Delete(ctx context.Context, id int64) error

	// DeleteByOrganization deletes all promotions of an organization
	DeleteByOrganization(ctx context.Context, organizationID int64) error
}

package order

import (
	"context"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order with its items
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindByOrganization finds all orders of an organization, newest first
	FindByOrganization(ctx context.Context, organizationID int64) ([]Order, error)

	// FindByStatus finds all orders in a given status, newest first
	FindByStatus(ctx context.Context, status Status) ([]Order, error)

	// Create persists an order together with its items in one transaction
	Create(ctx context.Context, o *Order) error

	// Save updates an existing order
	Save(ctx context.Context, o *Order) error

	// Delete deletes an order; items are removed with it
	Delete(ctx context.Context, id int64) error
}

package integration

import (
	"context"
)

// SyncRepository defines the interface for sync configuration persistence
type SyncRepository interface {
	// FindByID finds a sync configuration by its ID
	FindByID(ctx context.Context, id int64) (*GoogleSheetsSync, error)

	// FindByOrganization finds the sync configuration for an organization
	FindByOrganization(ctx context.Context, organizationID int64) (*GoogleSheetsSync, error)

	// FindActive finds all active sync configurations
	FindActive(ctx context.Context) ([]GoogleSheetsSync, error)

	// FindAll finds all sync configurations
	FindAll(ctx context.Context) ([]GoogleSheetsSync, error)

	// Save creates or updates a sync configuration
	Save(ctx context.Context, s *GoogleSheetsSync) error

	// Delete deletes a sync configuration
	Delete(ctx context.Context, id int64) error
}

package media

import (
	"context"
)

// Repository defines the interface for media file persistence
type Repository interface {
	// FindByID finds a media file by its ID
	FindByID(ctx context.Context, id int64) (*MediaFile, error)

	// FindByOrganization finds all media files of an organization
	FindByOrganization(ctx context.Context, organizationID int64) ([]MediaFile, error)

	// FindByOrganizationAndCategory finds media files of an organization in a category
	FindByOrganizationAndCategory(ctx context.Context, organizationID int64, category string) ([]MediaFile, error)

	// Save creates or updates a media file record
	Save(ctx context.Context, f *MediaFile) error

	// Delete deletes a media file record
	Delete(ctx context.Context, id int64) error
}

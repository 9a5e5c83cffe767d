package template

import (
	"context"
)

// Repository defines the interface for template persistence
type Repository interface {
	// FindByID finds a template by its ID
	FindByID(ctx context.Context, id int64) (*Template, error)

	// FindAll finds all templates
	FindAll(ctx context.Context) ([]Template, error)

	// FindActive finds all active templates
	FindActive(ctx context.Context) ([]Template, error)

	// Save creates or updates a template
	Save(ctx context.Context, t *Template) error

	// Delete deletes a template
	Delete(ctx context.Context, id int64) error
}

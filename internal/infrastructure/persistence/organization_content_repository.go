package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/content"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormContentRepository implements content.ContentRepository using GORM
type GormContentRepository struct {
	db *gorm.DB
}

// Ensure GormContentRepository implements ContentRepository
var _ content.ContentRepository = (*GormContentRepository)(nil)

// NewGormContentRepository creates a new GormContentRepository
func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

// FindByOrganization finds the content row of an organization
func (r *GormContentRepository) FindByOrganization(ctx context.Context, organizationID int64) (*content.OrganizationContent, error) {
	var c content.OrganizationContent
	if err := r.db.WithContext(ctx).First(&c, "organization_id = ?", organizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ExistsByOrganization checks whether a content row exists for an organization
func (r *GormContentRepository) ExistsByOrganization(ctx context.Context, organizationID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&content.OrganizationContent{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a content row
func (r *GormContentRepository) Save(ctx context.Context, c *content.OrganizationContent) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteByOrganization deletes the content row of an organization
func (r *GormContentRepository) DeleteByOrganization(ctx context.Context, organizationID int64) error {
	return r.db.WithContext(ctx).Delete(&content.OrganizationContent{}, "organization_id = ?", organizationID).Error
}

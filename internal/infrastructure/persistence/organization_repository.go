package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormOrganizationRepository implements landing.OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// Ensure GormOrganizationRepository implements OrganizationRepository
var _ landing.OrganizationRepository = (*GormOrganizationRepository)(nil)

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by its ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id int64) (*landing.Organization, error) {
	var org landing.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// FindAll finds all organizations
func (r *GormOrganizationRepository) FindAll(ctx context.Context) ([]landing.Organization, error) {
	var orgs []landing.Organization
	if err := r.db.WithContext(ctx).Order("id").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// FindByStatus finds organizations in a given status
func (r *GormOrganizationRepository) FindByStatus(ctx context.Context, status landing.OrganizationStatus) ([]landing.Organization, error) {
	var orgs []landing.Organization
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id").
		Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// ExistsByID checks whether an organization exists
func (r *GormOrganizationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&landing.Organization{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an organization
func (r *GormOrganizationRepository) Save(ctx context.Context, org *landing.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// Delete deletes an organization
func (r *GormOrganizationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&landing.Organization{}, "id = ?", id).Error
}

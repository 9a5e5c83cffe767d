package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormLandingRepository implements landing.LandingRepository using GORM
type GormLandingRepository struct {
	db *gorm.DB
}

// Ensure GormLandingRepository implements LandingRepository
var _ landing.LandingRepository = (*GormLandingRepository)(nil)

// NewGormLandingRepository creates a new GormLandingRepository
func NewGormLandingRepository(db *gorm.DB) *GormLandingRepository {
	return &GormLandingRepository{db: db}
}

// FindByID finds a landing by its ID
func (r *GormLandingRepository) FindByID(ctx context.Context, id int64) (*landing.Landing, error) {
	var l landing.Landing
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindByDomain finds a landing by its exact domain
func (r *GormLandingRepository) FindByDomain(ctx context.Context, domain string) (*landing.Landing, error) {
	var l landing.Landing
	if err := r.db.WithContext(ctx).First(&l, "domain = ?", domain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindBySubdomain finds a landing by its subdomain
func (r *GormLandingRepository) FindBySubdomain(ctx context.Context, subdomain string) (*landing.Landing, error) {
	var l landing.Landing
	if err := r.db.WithContext(ctx).First(&l, "subdomain = ?", subdomain).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindByOrganization finds all landings of an organization
func (r *GormLandingRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]landing.Landing, error) {
	var landings []landing.Landing
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id").
		Find(&landings).Error; err != nil {
		return nil, err
	}
	return landings, nil
}

// FindAll finds all landings
func (r *GormLandingRepository) FindAll(ctx context.Context) ([]landing.Landing, error) {
	var landings []landing.Landing
	if err := r.db.WithContext(ctx).Order("id").Find(&landings).Error; err != nil {
		return nil, err
	}
	return landings, nil
}

// ExistsBySubdomain checks whether a subdomain is already taken
func (r *GormLandingRepository) ExistsBySubdomain(ctx context.Context, subdomain string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&landing.Landing{}).
		Where("subdomain = ?", subdomain).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a landing
func (r *GormLandingRepository) Save(ctx context.Context, l *landing.Landing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// Delete deletes a landing
func (r *GormLandingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&landing.Landing{}, "id = ?", id).Error
}

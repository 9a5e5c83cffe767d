package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormSeoDataRepository implements landing.SeoDataRepository using GORM
type GormSeoDataRepository struct {
	db *gorm.DB
}

// Ensure GormSeoDataRepository implements SeoDataRepository
var _ landing.SeoDataRepository = (*GormSeoDataRepository)(nil)

// NewGormSeoDataRepository creates a new GormSeoDataRepository
func NewGormSeoDataRepository(db *gorm.DB) *GormSeoDataRepository {
	return &GormSeoDataRepository{db: db}
}

// FindByLanding finds the SEO block of a landing
func (r *GormSeoDataRepository) FindByLanding(ctx context.Context, landingID int64) (*landing.SeoData, error) {
	var seo landing.SeoData
	if err := r.db.WithContext(ctx).First(&seo, "landing_id = ?", landingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &seo, nil
}

// Save creates or updates a SEO block
func (r *GormSeoDataRepository) Save(ctx context.Context, seo *landing.SeoData) error {
	return r.db.WithContext(ctx).Save(seo).Error
}

// DeleteByLanding deletes the SEO block of a landing
func (r *GormSeoDataRepository) DeleteByLanding(ctx context.Context, landingID int64) error {
	return r.db.WithContext(ctx).Delete(&landing.SeoData{}, "landing_id = ?", landingID).Error
}

package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/content"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormPromotionRepository implements content.PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// Ensure GormPromotionRepository implements PromotionRepository
var _ content.PromotionRepository = (*GormPromotionRepository)(nil)

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by its ID
func (r *GormPromotionRepository) FindByID(ctx context.Context, id int64) (*content.Promotion, error) {
	var p content.Promotion
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByOrganization finds all promotions of an organization
func (r *GormPromotionRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]content.Promotion, error) {
	var promotions []content.Promotion
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// FindActiveByOrganization finds promotions active on the given day.
// A nil start or end date is an open boundary.
func (r *GormPromotionRepository) FindActiveByOrganization(ctx context.Context, organizationID int64, day time.Time) ([]content.Promotion, error) {
	var promotions []content.Promotion
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_active = ?", organizationID, true).
		Where("start_date IS NULL OR start_date <= ?", day).
		Where("end_date IS NULL OR end_date >= ?", day).
		Order("id").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Save creates or updates a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, p *content.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete deletes a promotion
func (r *GormPromotionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&content.Promotion{}, "id = ?", id).Error
}

// DeleteByOrganization deletes all promotions of an organization
func (r *GormPromotionRepository) DeleteByOrganization(ctx context.Context, organizationID int64) error {
	return r.db.WithContext(ctx).Delete(&content.Promotion{}, "organization_id = ?", organizationID).Error
}

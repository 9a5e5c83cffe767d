package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/content"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormProductRepository implements content.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// Ensure GormProductRepository implements ProductRepository
var _ content.ProductRepository = (*GormProductRepository)(nil)

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*content.Product, error) {
	var p content.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByOrganization finds all products of an organization
func (r *GormProductRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]content.Product, error) {
	var products []content.Product
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("sort_order, id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindActiveByOrganization finds active products of an organization
func (r *GormProductRepository) FindActiveByOrganization(ctx context.Context, organizationID int64) ([]content.Product, error) {
	var products []content.Product
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_active = ?", organizationID, true).
		Order("sort_order, id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByIDs finds multiple products by their IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]content.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []content.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, p *content.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete deletes a product
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&content.Product{}, "id = ?", id).Error
}

// DeleteByOrganization deletes all products of an organization
func (r *GormProductRepository) DeleteByOrganization(ctx context.Context, organizationID int64) error {
	return r.db.WithContext(ctx).Delete(&content.Product{}, "organization_id = ?", organizationID).Error
}

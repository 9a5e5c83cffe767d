package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/integration"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormSheetsSyncRepository implements integration.SyncRepository using GORM
type GormSheetsSyncRepository struct {
	db *gorm.DB
}

// Ensure GormSheetsSyncRepository implements SyncRepository
var _ integration.SyncRepository = (*GormSheetsSyncRepository)(nil)

// NewGormSheetsSyncRepository creates a new GormSheetsSyncRepository
func NewGormSheetsSyncRepository(db *gorm.DB) *GormSheetsSyncRepository {
	return &GormSheetsSyncRepository{db: db}
}

// FindByID finds a sync configuration by its ID
func (r *GormSheetsSyncRepository) FindByID(ctx context.Context, id int64) (*integration.GoogleSheetsSync, error) {
	var s integration.GoogleSheetsSync
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindByOrganization finds the sync configuration for an organization
func (r *GormSheetsSyncRepository) FindByOrganization(ctx context.Context, organizationID int64) (*integration.GoogleSheetsSync, error) {
	var s integration.GoogleSheetsSync
	if err := r.db.WithContext(ctx).First(&s, "organization_id = ?", organizationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindActive finds all active sync configurations
func (r *GormSheetsSyncRepository) FindActive(ctx context.Context) ([]integration.GoogleSheetsSync, error) {
	var syncs []integration.GoogleSheetsSync
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&syncs).Error; err != nil {
		return nil, err
	}
	return syncs, nil
}

// FindAll finds all sync configurations
func (r *GormSheetsSyncRepository) FindAll(ctx context.Context) ([]integration.GoogleSheetsSync, error) {
	var syncs []integration.GoogleSheetsSync
	if err := r.db.WithContext(ctx).Order("id").Find(&syncs).Error; err != nil {
		return nil, err
	}
	return syncs, nil
}

// Save creates or updates a sync configuration
func (r *GormSheetsSyncRepository) Save(ctx context.Context, s *integration.GoogleSheetsSync) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete deletes a sync configuration
func (r *GormSheetsSyncRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&integration.GoogleSheetsSync{}, "id = ?", id).Error
}

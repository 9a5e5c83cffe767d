package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/media"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// GormMediaFileRepository implements media.Repository using GORM
type GormMediaFileRepository struct {
	db *gorm.DB
}

// Ensure GormMediaFileRepository implements Repository
var _ media.Repository = (*GormMediaFileRepository)(nil)

// NewGormMediaFileRepository creates a new GormMediaFileRepository
func NewGormMediaFileRepository(db *gorm.DB) *GormMediaFileRepository {
	return &GormMediaFileRepository{db: db}
}

// FindByID finds a media file by its ID
func (r *GormMediaFileRepository) FindByID(ctx context.Context, id int64) (*media.MediaFile, error) {
	var f media.MediaFile
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByOrganization finds all media files of an organization
func (r *GormMediaFileRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]media.MediaFile, error) {
	var files []media.MediaFile
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// FindByOrganizationAndCategory finds media files of an organization in a category
func (r *GormMediaFileRepository) FindByOrganizationAndCategory(ctx context.Context, organizationID int64, category string) ([]media.MediaFile, error) {
	var files []media.MediaFile
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND category = ?", organizationID, category).
		Order("id DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// Save creates or updates a media file record
func (r *GormMediaFileRepository) Save(ctx context.Context, f *media.MediaFile) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete deletes a media file record
func (r *GormMediaFileRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&media.MediaFile{}, "id = ?", id).Error
}

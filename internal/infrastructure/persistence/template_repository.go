package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/klassifikator/backend/internal/domain/shared"
	"github.com/klassifikator/backend/internal/domain/template"
)

// GormTemplateRepository implements template.Repository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// Ensure GormTemplateRepository implements Repository
var _ template.Repository = (*GormTemplateRepository)(nil)

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// FindByID finds a template by its ID
func (r *GormTemplateRepository) FindByID(ctx context.Context, id int64) (*template.Template, error) {
	var t template.Template
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindAll finds all templates
func (r *GormTemplateRepository) FindAll(ctx context.Context) ([]template.Template, error) {
	var templates []template.Template
	if err := r.db.WithContext(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// FindActive finds all active templates
func (r *GormTemplateRepository) FindActive(ctx context.Context) ([]template.Template, error) {
	var templates []template.Template
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Save creates or updates a template
func (r *GormTemplateRepository) Save(ctx context.Context, t *template.Template) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete deletes a template
func (r *GormTemplateRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&template.Template{}, "id = ?", id).Error
}

package template

import (
	"context"
	"strconv"

	domain "github.com/klassifikator/backend/internal/domain/template"
)

// Cache is the subset of the cache store used by this package
type Cache interface {
	Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, bucket, key string, value interface{}) error
	InvalidateBucket(ctx context.Context, bucket string) error
}

const templateBucket = "template"

// Service handles template management
type Service struct {
	repo  domain.Repository
	cache Cache
}

// NewService creates a new template Service
func NewService(repo domain.Repository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create creates a new template at version 1
func (s *Service) Create(ctx context.Context, req CreateTemplateRequest) (*domain.Template, error) {
	t, err := domain.NewTemplate(req.Name, req.HTMLStructure)
	if err != nil {
		return nil, err
	}

	t.Description = req.Description
	t.CSSStyles = req.CSSStyles
	t.JSScripts = req.JSScripts
	if req.Config != "" {
		t.Config = req.Config
	}

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, templateBucket)
	return t, nil
}

// GetByID retrieves a template by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	key := "id:" + strconv.FormatInt(id, 10)
	var cached domain.Template
	if hit, _ := s.cache.Get(ctx, templateBucket, key, &cached); hit {
		return &cached, nil
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, templateBucket, key, t)
	return t, nil
}

// List retrieves all templates, optionally only active ones
func (s *Service) List(ctx context.Context, activeOnly bool) ([]domain.Template, error) {
	if activeOnly {
		return s.repo.FindActive(ctx)
	}
	return s.repo.FindAll(ctx)
}

// Update overwrites a template's fields and bumps its version when the
// rendered output changes
func (s *Service) Update(ctx context.Context, id int64, req UpdateTemplateRequest) (*domain.Template, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	structuralChange := t.HTMLStructure != req.HTMLStructure ||
		t.CSSStyles != req.CSSStyles ||
		t.JSScripts != req.JSScripts

	t.Name = req.Name
	t.Description = req.Description
	t.HTMLStructure = req.HTMLStructure
	t.CSSStyles = req.CSSStyles
	t.JSScripts = req.JSScripts
	if req.Config != "" {
		t.Config = req.Config
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if structuralChange {
		t.BumpVersion()
	}

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, templateBucket)
	return t, nil
}

// Delete removes a template
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.InvalidateBucket(ctx, templateBucket)
	return nil
}

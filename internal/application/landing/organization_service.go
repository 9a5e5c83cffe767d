package landing

import (
	"context"

	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// Cache is the subset of the cache store used by this package
type Cache interface {
	Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, bucket, key string, value interface{}) error
	InvalidateBucket(ctx context.Context, bucket string) error
}

const (
	organizationBucket = "organization"
	landingBucket      = "landing"
)

// OrganizationService handles organization business operations
type OrganizationService struct {
	orgRepo landing.OrganizationRepository
	cache   Cache
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(orgRepo landing.OrganizationRepository, cache Cache) *OrganizationService {
	return &OrganizationService{
		orgRepo: orgRepo,
		cache:   cache,
	}
}

// Create creates a new organization
func (s *OrganizationService) Create(ctx context.Context, req CreateOrganizationRequest) (*landing.Organization, error) {
	org, err := landing.NewOrganization(req.Name, req.Category)
	if err != nil {
		return nil, err
	}

	org.Type = req.Type
	org.Address = req.Address
	org.Phone = req.Phone
	org.Email = req.Email
	org.Website = req.Website
	org.WorkingHours = req.WorkingHours
	org.GoogleSheetID = req.GoogleSheetID
	org.TelegramBotToken = req.TelegramBotToken
	org.TelegramChatID = req.TelegramChatID

	if err := s.orgRepo.Save(ctx, org); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, organizationBucket)
	return org, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(ctx context.Context, id int64) (*landing.Organization, error) {
	key := cacheKeyID(id)
	var cached landing.Organization
	if hit, _ := s.cache.Get(ctx, organizationBucket, key, &cached); hit {
		return &cached, nil
	}

	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, organizationBucket, key, org)
	return org, nil
}

// List retrieves all organizations, optionally filtered by status
func (s *OrganizationService) List(ctx context.Context, status string) ([]landing.Organization, error) {
	if status != "" {
		return s.orgRepo.FindByStatus(ctx, landing.OrganizationStatus(status))
	}
	return s.orgRepo.FindAll(ctx)
}

// Update overwrites an organization's fields
func (s *OrganizationService) Update(ctx context.Context, id int64, req UpdateOrganizationRequest) (*landing.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	org.Name = req.Name
	org.Category = req.Category
	org.Type = req.Type
	org.Address = req.Address
	org.Phone = req.Phone
	org.Email = req.Email
	org.Website = req.Website
	org.WorkingHours = req.WorkingHours
	org.GoogleSheetID = req.GoogleSheetID
	org.TelegramBotToken = req.TelegramBotToken
	org.TelegramChatID = req.TelegramChatID
	if req.Status != "" {
		org.Status = landing.OrganizationStatus(req.Status)
	}

	if err := s.orgRepo.Save(ctx, org); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, organizationBucket)
	return org, nil
}

// Delete removes an organization
func (s *OrganizationService) Delete(ctx context.Context, id int64) error {
	exists, err := s.orgRepo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}

	if err := s.orgRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.InvalidateBucket(ctx, organizationBucket)
	return nil
}

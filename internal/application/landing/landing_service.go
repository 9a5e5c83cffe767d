package landing

import (
	"context"
	"strconv"
	"strings"

	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
)

func cacheKeyID(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}

// LandingService handles landing business operations
type LandingService struct {
	landingRepo landing.LandingRepository
	orgRepo     landing.OrganizationRepository
	cache       Cache
}

// NewLandingService creates a new LandingService
func NewLandingService(
	landingRepo landing.LandingRepository,
	orgRepo landing.OrganizationRepository,
	cache Cache,
) *LandingService {
	return &LandingService{
		landingRepo: landingRepo,
		orgRepo:     orgRepo,
		cache:       cache,
	}
}

// Create creates a new landing in DRAFT status.
// Fails with NOT_FOUND when the organization is missing and with
// ALREADY_EXISTS when the subdomain is taken.
func (s *LandingService) Create(ctx context.Context, req CreateLandingRequest) (*landing.Landing, error) {
	exists, err := s.orgRepo.ExistsByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Organization not found")
	}

	taken, err := s.landingRepo.ExistsBySubdomain(ctx, strings.ToLower(strings.TrimSpace(req.Subdomain)))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Subdomain already exists: "+req.Subdomain)
	}

	l, err := landing.NewLanding(req.OrganizationID, req.Domain, req.Subdomain, req.TemplateID)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		l.Status = landing.LandingStatus(req.Status)
	}

	if err := s.landingRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, landingBucket)
	return l, nil
}

// GetByID retrieves a landing by ID
func (s *LandingService) GetByID(ctx context.Context, id int64) (*landing.Landing, error) {
	key := cacheKeyID(id)
	var cached landing.Landing
	if hit, _ := s.cache.Get(ctx, landingBucket, key, &cached); hit {
		return &cached, nil
	}

	l, err := s.landingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, landingBucket, key, l)
	return l, nil
}

// GetByDomain retrieves a landing by its exact domain
func (s *LandingService) GetByDomain(ctx context.Context, domain string) (*landing.Landing, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	key := "domain:" + domain
	var cached landing.Landing
	if hit, _ := s.cache.Get(ctx, landingBucket, key, &cached); hit {
		return &cached, nil
	}

	l, err := s.landingRepo.FindByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, landingBucket, key, l)
	return l, nil
}

// GetBySubdomain retrieves a landing by its subdomain
func (s *LandingService) GetBySubdomain(ctx context.Context, subdomain string) (*landing.Landing, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	key := "subdomain:" + subdomain
	var cached landing.Landing
	if hit, _ := s.cache.Get(ctx, landingBucket, key, &cached); hit {
		return &cached, nil
	}

	l, err := s.landingRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, landingBucket, key, l)
	return l, nil
}

// ListByOrganization retrieves all landings of an organization
func (s *LandingService) ListByOrganization(ctx context.Context, organizationID int64) ([]landing.Landing, error) {
	return s.landingRepo.FindByOrganization(ctx, organizationID)
}

// List retrieves all landings
func (s *LandingService) List(ctx context.Context) ([]landing.Landing, error) {
	return s.landingRepo.FindAll(ctx)
}

// Update overwrites a landing's fields, re-checking subdomain uniqueness
// when the subdomain changes
func (s *LandingService) Update(ctx context.Context, id int64, req UpdateLandingRequest) (*landing.Landing, error) {
	l, err := s.landingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newSubdomain := strings.ToLower(strings.TrimSpace(req.Subdomain))
	if l.Subdomain != newSubdomain {
		taken, err := s.landingRepo.ExistsBySubdomain(ctx, newSubdomain)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Subdomain already exists: "+req.Subdomain)
		}
	}

	l.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	l.Subdomain = newSubdomain
	l.TemplateID = req.TemplateID
	if req.Status != "" {
		l.Status = landing.LandingStatus(req.Status)
	}
	if req.SSLEnabled != nil {
		l.SSLEnabled = *req.SSLEnabled
	}

	if err := s.landingRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, landingBucket)
	return l, nil
}

// Publish marks a landing as ACTIVE and stamps the publication time
func (s *LandingService) Publish(ctx context.Context, id int64) (*landing.Landing, error) {
	l, err := s.landingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Publish()
	if err := s.landingRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, landingBucket)
	return l, nil
}

// Delete removes a landing
func (s *LandingService) Delete(ctx context.Context, id int64) error {
	if _, err := s.landingRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.landingRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.InvalidateBucket(ctx, landingBucket)
	return nil
}

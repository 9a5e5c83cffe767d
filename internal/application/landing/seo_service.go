package landing

import (
	"context"

	"github.com/klassifikator/backend/internal/domain/landing"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// SeoService handles SEO metadata for landings
type SeoService struct {
	seoRepo     landing.SeoDataRepository
	landingRepo landing.LandingRepository
}

// NewSeoService creates a new SeoService
func NewSeoService(seoRepo landing.SeoDataRepository, landingRepo landing.LandingRepository) *SeoService {
	return &SeoService{
		seoRepo:     seoRepo,
		landingRepo: landingRepo,
	}
}

// GetByLanding retrieves the SEO block for a landing
func (s *SeoService) GetByLanding(ctx context.Context, landingID int64) (*landing.SeoData, error) {
	return s.seoRepo.FindByLanding(ctx, landingID)
}

// Save upserts the SEO block for a landing
func (s *SeoService) Save(ctx context.Context, landingID int64, req SaveSeoDataRequest) (*landing.SeoData, error) {
	if _, err := s.landingRepo.FindByID(ctx, landingID); err != nil {
		return nil, err
	}

	seo, err := s.seoRepo.FindByLanding(ctx, landingID)
	if err != nil {
		if err != shared.ErrNotFound {
			return nil, err
		}
		seo = &landing.SeoData{LandingID: landingID}
	}

	seo.Title = req.Title
	seo.MetaDescription = req.MetaDescription
	seo.MetaKeywords = req.MetaKeywords
	seo.OgTitle = req.OgTitle
	seo.OgDescription = req.OgDescription
	seo.OgImage = req.OgImage
	seo.SchemaMarkup = req.SchemaMarkup

	if err := s.seoRepo.Save(ctx, seo); err != nil {
		return nil, err
	}
	return seo, nil
}

// Delete removes the SEO block for a landing
func (s *SeoService) Delete(ctx context.Context, landingID int64) error {
	return s.seoRepo.DeleteByLanding(ctx, landingID)
}

package content

import (
	"context"
	"strconv"
	"time"

	domain "github.com/klassifikator/backend/internal/domain/content"
	"github.com/klassifikator/backend/internal/domain/shared"
)

// Cache is the subset of the cache store used by this package
type Cache interface {
	Get(ctx context.Context, bucket, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, bucket, key string, value interface{}) error
	InvalidateBucket(ctx context.Context, bucket string) error
}

const (
	contentBucket   = "content"
	productBucket   = "product"
	promotionBucket = "promotion"
)

func orgKey(organizationID int64) string {
	return "org:" + strconv.FormatInt(organizationID, 10)
}

// Service handles organization content, products and promotions
type Service struct {
	contentRepo   domain.ContentRepository
	productRepo   domain.ProductRepository
	promotionRepo domain.PromotionRepository
	cache         Cache
	now           func() time.Time
}

// NewService creates a new content Service
func NewService(
	contentRepo domain.ContentRepository,
	productRepo domain.ProductRepository,
	promotionRepo domain.PromotionRepository,
	cache Cache,
) *Service {
	return &Service{
		contentRepo:   contentRepo,
		productRepo:   productRepo,
		promotionRepo: promotionRepo,
		cache:         cache,
		now:           time.Now,
	}
}

// GetContent retrieves the content row for an organization
func (s *Service) GetContent(ctx context.Context, organizationID int64) (*domain.OrganizationContent, error) {
	key := orgKey(organizationID)
	var cached domain.OrganizationContent
	if hit, _ := s.cache.Get(ctx, contentBucket, key, &cached); hit {
		return &cached, nil
	}

	c, err := s.contentRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, contentBucket, key, c)
	return c, nil
}

// SaveContent upserts the content row for an organization.
// The version counter starts at 1 and increments on every subsequent save.
func (s *Service) SaveContent(ctx context.Context, req SaveContentRequest) (*domain.OrganizationContent, error) {
	c, err := s.contentRepo.FindByOrganization(ctx, req.OrganizationID)
	if err != nil {
		if err != shared.ErrNotFound {
			return nil, err
		}
		c = domain.NewOrganizationContent(req.OrganizationID)
	} else {
		c.BumpVersion()
	}

	c.Title = req.Title
	c.MetaDescription = req.MetaDescription
	c.H1 = req.H1
	c.AboutText = req.AboutText
	if req.ContentData != "" {
		c.ContentData = req.ContentData
	}

	if err := s.contentRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, contentBucket)
	return c, nil
}

// GetFullContent aggregates content, active products and current promotions
func (s *Service) GetFullContent(ctx context.Context, organizationID int64) (*FullContent, error) {
	c, err := s.GetContent(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	products, err := s.ListProducts(ctx, organizationID, true)
	if err != nil {
		return nil, err
	}

	promotions, err := s.ListPromotions(ctx, organizationID, true)
	if err != nil {
		return nil, err
	}

	return &FullContent{
		Content:    c,
		Products:   products,
		Promotions: promotions,
	}, nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ProductsByIDs retrieves product snapshots for the given IDs
func (s *Service) ProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	return s.productRepo.FindByIDs(ctx, ids)
}

// ListProducts retrieves an organization's products, optionally only active ones
func (s *Service) ListProducts(ctx context.Context, organizationID int64, activeOnly bool) ([]domain.Product, error) {
	key := orgKey(organizationID)
	if activeOnly {
		key = "org-active:" + strconv.FormatInt(organizationID, 10)
	}

	var cached []domain.Product
	if hit, _ := s.cache.Get(ctx, productBucket, key, &cached); hit {
		return cached, nil
	}

	var (
		products []domain.Product
		err      error
	)
	if activeOnly {
		products, err = s.productRepo.FindActiveByOrganization(ctx, organizationID)
	} else {
		products, err = s.productRepo.FindByOrganization(ctx, organizationID)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, productBucket, key, products)
	return products, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(ctx context.Context, req ProductRequest) (*domain.Product, error) {
	p, err := domain.NewProduct(req.OrganizationID, req.Name, req.Price)
	if err != nil {
		return nil, err
	}
	applyProductRequest(p, req)

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, productBucket)
	return p, nil
}

// UpdateProduct overwrites a product's fields
func (s *Service) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (*domain.Product, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Price = req.Price
	applyProductRequest(p, req)

	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, productBucket)
	return p, nil
}

// DeleteProduct removes a product
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.InvalidateBucket(ctx, productBucket)
	return nil
}

// ReplaceProducts reconciles an organization's products against the given
// set: existing rows are matched by name and updated, missing ones created,
// and rows absent from the set deleted. This avoids the transient empty
// state a delete-all-then-recreate pass would produce.
func (s *Service) ReplaceProducts(ctx context.Context, organizationID int64, reqs []ProductRequest) ([]domain.Product, error) {
	existing, err := s.productRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*domain.Product, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	seen := make(map[string]bool, len(reqs))
	result := make([]domain.Product, 0, len(reqs))
	for _, req := range reqs {
		req.OrganizationID = organizationID
		seen[req.Name] = true

		if p, ok := byName[req.Name]; ok {
			p.Price = req.Price
			applyProductRequest(p, req)
			if err := s.productRepo.Save(ctx, p); err != nil {
				return nil, err
			}
			result = append(result, *p)
			continue
		}

		p, err := domain.NewProduct(organizationID, req.Name, req.Price)
		if err != nil {
			return nil, err
		}
		applyProductRequest(p, req)
		if err := s.productRepo.Save(ctx, p); err != nil {
			return nil, err
		}
		result = append(result, *p)
	}

	for i := range existing {
		if !seen[existing[i].Name] {
			if err := s.productRepo.Delete(ctx, existing[i].ID); err != nil {
				return nil, err
			}
		}
	}

	_ = s.cache.InvalidateBucket(ctx, productBucket)
	return result, nil
}

// GetPromotion retrieves a promotion by ID
func (s *Service) GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error) {
	return s.promotionRepo.FindByID(ctx, id)
}

// ListPromotions retrieves an organization's promotions, optionally only
// those currently running
func (s *Service) ListPromotions(ctx context.Context, organizationID int64, activeOnly bool) ([]domain.Promotion, error) {
	key := orgKey(organizationID)
	if activeOnly {
		key = "org-active:" + strconv.FormatInt(organizationID, 10)
	}

	var cached []domain.Promotion
	if hit, _ := s.cache.Get(ctx, promotionBucket, key, &cached); hit {
		return cached, nil
	}

	var (
		promotions []domain.Promotion
		err        error
	)
	if activeOnly {
		promotions, err = s.promotionRepo.FindActiveByOrganization(ctx, organizationID, s.now())
	} else {
		promotions, err = s.promotionRepo.FindByOrganization(ctx, organizationID)
	}
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, promotionBucket, key, promotions)
	return promotions, nil
}

// CreatePromotion creates a new promotion
func (s *Service) CreatePromotion(ctx context.Context, req PromotionRequest) (*domain.Promotion, error) {
	p, err := domain.NewPromotion(req.OrganizationID, req.Title)
	if err != nil {
		return nil, err
	}
	applyPromotionRequest(p, req)

	if err := s.promotionRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, promotionBucket)
	return p, nil
}

// UpdatePromotion overwrites a promotion's fields
func (s *Service) UpdatePromotion(ctx context.Context, id int64, req PromotionRequest) (*domain.Promotion, error) {
	p, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = req.Title
	applyPromotionRequest(p, req)

	if err := s.promotionRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateBucket(ctx, promotionBucket)
	return p, nil
}

// DeletePromotion removes a promotion
func (s *Service) DeletePromotion(ctx context.Context, id int64) error {
	if _, err := s.promotionRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.InvalidateBucket(ctx, promotionBucket)
	return nil
}

// ReplacePromotions reconciles an organization's promotions against the
// given set, matching existing rows by title
func (s *Service) ReplacePromotions(ctx context.Context, organizationID int64, reqs []PromotionRequest) ([]domain.Promotion, error) {
	existing, err := s.promotionRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string]*domain.Promotion, len(existing))
	for i := range existing {
		byTitle[existing[i].Title] = &existing[i]
	}

	seen := make(map[string]bool, len(reqs))
	result := make([]domain.Promotion, 0, len(reqs))
	for _, req := range reqs {
		req.OrganizationID = organizationID
		seen[req.Title] = true

		if p, ok := byTitle[req.Title]; ok {
			applyPromotionRequest(p, req)
			if err := s.promotionRepo.Save(ctx, p); err != nil {
				return nil, err
			}
			result = append(result, *p)
			continue
		}

		p, err := domain.NewPromotion(organizationID, req.Title)
		if err != nil {
			return nil, err
		}
		applyPromotionRequest(p, req)
		if err := s.promotionRepo.Save(ctx, p); err != nil {
			return nil, err
		}
		result = append(result, *p)
	}

	for i := range existing {
		if !seen[existing[i].Title] {
			if err := s.promotionRepo.Delete(ctx, existing[i].ID); err != nil {
				return nil, err
			}
		}
	}

	_ = s.cache.InvalidateBucket(ctx, promotionBucket)
	return result, nil
}

func applyProductRequest(p *domain.Product, req ProductRequest) {
	p.Category = req.Category
	p.Description = req.Description
	p.ImageID = req.ImageID
	p.SortOrder = req.SortOrder
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

func applyPromotionRequest(p *domain.Promotion, req PromotionRequest) {
	p.Description = req.Description
	p.ImageID = req.ImageID
	p.StartDate = req.StartDate
	p.EndDate = req.EndDate
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

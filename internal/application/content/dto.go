package content

import (
	"time"

	domain "github.com/klassifikator/backend/internal/domain/content"
	"github.com/shopspring/decimal"
)

// SaveContentRequest upserts the content row of an organization
type SaveContentRequest struct {
	OrganizationID  int64  `json:"organizationId" binding:"required"`
	Title           string `json:"title" binding:"max=255"`
	MetaDescription string `json:"metaDescription"`
	H1              string `json:"h1" binding:"max=255"`
	AboutText       string `json:"aboutText"`
	ContentData     string `json:"contentData"`
}

// ProductRequest carries product fields for create/update/replace operations
type ProductRequest struct {
	OrganizationID int64           `json:"organizationId" binding:"required"`
	Category       string          `json:"category" binding:"max=100"`
	Name           string          `json:"name" binding:"required,max=255"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	ImageID        *int64          `json:"imageId"`
	IsActive       *bool           `json:"isActive"`
	SortOrder      int             `json:"sortOrder"`
}

// PromotionRequest carries promotion fields for create/update/replace operations
type PromotionRequest struct {
	OrganizationID int64      `json:"organizationId" binding:"required"`
	Title          string     `json:"title" binding:"required,max=255"`
	Description    string     `json:"description"`
	ImageID        *int64     `json:"imageId"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	IsActive       *bool      `json:"isActive"`
}

// FullContent aggregates everything the renderer needs for one organization
type FullContent struct {
	Content    *domain.OrganizationContent `json:"content"`
	Products   []domain.Product            `json:"products"`
	Promotions []domain.Promotion          `json:"promotions"`
}

package content

import (
	"strings"

	"github.com/klassifikator/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a catalog item shown on an organization's landing
type Product struct {
	shared.BaseEntity
	OrganizationID int64           `gorm:"not null;index" json:"organizationId"`
	Category       string          `gorm:"type:varchar(100)" json:"category"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	ImageID        *int64          `gorm:"index" json:"imageId"`
	IsActive       bool            `gorm:"not null;default:true" json:"isActive"`
	SortOrder      int             `gorm:"not null;default:0" json:"sortOrder"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(organizationID int64, name string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}

	return &Product{
		OrganizationID: organizationID,
		Name:           strings.TrimSpace(name),
		Price:          price,
		IsActive:       true,
	}, nil
}

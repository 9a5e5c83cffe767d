package content

import (
	"strings"
	"time"

	"github.com/klassifikator/backend/internal/domain/shared"
)

// Promotion represents a time-bounded offer shown on an organization's landing.
// Start/end dates are optional; a nil boundary is open-ended.
type Promotion struct {
	shared.BaseEntity
	OrganizationID int64      `gorm:"not null;index" json:"organizationId"`
	Title          string     `gorm:"type:varchar(255);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	ImageID        *int64     `gorm:"index" json:"imageId"`
	StartDate      *time.Time `gorm:"type:date" json:"startDate"`
	EndDate        *time.Time `gorm:"type:date" json:"endDate"`
	IsActive       bool       `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// NewPromotion creates a new active promotion
func NewPromotion(organizationID int64, title string) (*Promotion, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Promotion title cannot be empty")
	}

	return &Promotion{
		OrganizationID: organizationID,
		Title:          strings.TrimSpace(title),
		IsActive:       true,
	}, nil
}

// IsCurrent reports whether the promotion is active on the given day
func (p *Promotion) IsCurrent(day time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && day.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && day.After(*p.EndDate) {
		return false
	}
	return true
}

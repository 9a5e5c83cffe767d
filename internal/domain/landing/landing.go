package landing

import (
	"strings"
	"time"

	"github.com/klassifikator/backend/internal/domain/shared"
)

// LandingStatus represents the publication status of a landing
type LandingStatus string

const (
	LandingStatusDraft  LandingStatus = "DRAFT"
	LandingStatusActive LandingStatus = "ACTIVE"
)

// Landing represents a published page bound to one domain/subdomain,
// rendered from a Template plus an Organization's content.
type Landing struct {
	shared.BaseEntity
	OrganizationID int64         `gorm:"not null;index" json:"organizationId"`
	Domain         string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"domain"`
	Subdomain      string        `gorm:"type:varchar(100);not null;uniqueIndex" json:"subdomain"`
	TemplateID     int64         `gorm:"not null;index" json:"templateId"`
	Status         LandingStatus `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	SSLEnabled     bool          `gorm:"not null;default:false" json:"sslEnabled"`
	PublishedAt    *time.Time    `json:"publishedAt"`
}

// TableName returns the table name for GORM
func (Landing) TableName() string {
	return "landings"
}

// NewLanding creates a new landing in DRAFT status.
// SSL is enabled manually by an administrator later.
func NewLanding(organizationID int64, domain, subdomain string, templateID int64) (*Landing, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}
	if err := validateSubdomain(subdomain); err != nil {
		return nil, err
	}

	return &Landing{
		OrganizationID: organizationID,
		Domain:         strings.ToLower(strings.TrimSpace(domain)),
		Subdomain:      strings.ToLower(strings.TrimSpace(subdomain)),
		TemplateID:     templateID,
		Status:         LandingStatusDraft,
		SSLEnabled:     false,
	}, nil
}

// Publish marks the landing as ACTIVE and stamps the publication time
func (l *Landing) Publish() {
	now := time.Now()
	l.Status = LandingStatusActive
	l.PublishedAt = &now
	l.UpdatedAt = now
}

// IsActive reports whether the landing is publicly rendered
func (l *Landing) IsActive() bool {
	return l.Status == LandingStatusActive
}

func validateDomain(domain string) error {
	if strings.TrimSpace(domain) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Landing domain cannot be empty")
	}
	if len(domain) > 255 {
		return shared.NewDomainError("INVALID_INPUT", "Landing domain cannot exceed 255 characters")
	}
	return nil
}

func validateSubdomain(subdomain string) error {
	if strings.TrimSpace(subdomain) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Landing subdomain cannot be empty")
	}
	if len(subdomain) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Landing subdomain cannot exceed 100 characters")
	}
	return nil
}

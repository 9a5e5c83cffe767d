package landing

import (
	"strings"

	"github.com/klassifikator/backend/internal/domain/shared"
)

// OrganizationStatus represents the lifecycle status of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive   OrganizationStatus = "ACTIVE"
	OrganizationStatusInactive OrganizationStatus = "INACTIVE"
)

// Organization represents a tenant business record.
// It is the root of per-tenant data: landings, content, products,
// promotions, media files and orders reference it by OrganizationID.
type Organization struct {
	shared.BaseEntity
	Name             string             `gorm:"type:varchar(255);not null" json:"name"`
	Category         string             `gorm:"type:varchar(100)" json:"category"`
	Type             string             `gorm:"type:varchar(100)" json:"type"`
	Address          string             `gorm:"type:text" json:"address"`
	Phone            string             `gorm:"type:varchar(50)" json:"phone"`
	Email            string             `gorm:"type:varchar(255)" json:"email"`
	Website          string             `gorm:"type:varchar(255)" json:"website"`
	WorkingHours     string             `gorm:"type:varchar(255)" json:"workingHours"`
	Status           OrganizationStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	GoogleSheetID    string             `gorm:"type:varchar(255)" json:"googleSheetId"`
	TelegramBotToken string             `gorm:"type:varchar(255)" json:"telegramBotToken"`
	TelegramChatID   string             `gorm:"type:varchar(100)" json:"telegramChatId"`
}

// TableName returns the table name for GORM
func (Organization) TableName() string {
	return "organizations"
}

// NewOrganization creates a new organization with ACTIVE status
func NewOrganization(name, category string) (*Organization, error) {
	if err := validateOrganizationName(name); err != nil {
		return nil, err
	}

	return &Organization{
		Name:     strings.TrimSpace(name),
		Category: category,
		Status:   OrganizationStatusActive,
	}, nil
}

// HasTelegramBot reports whether the organization has its own bot configured
func (o *Organization) HasTelegramBot() bool {
	return o.TelegramBotToken != "" && o.TelegramChatID != ""
}

func validateOrganizationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Organization name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_INPUT", "Organization name cannot exceed 255 characters")
	}
	return nil
}

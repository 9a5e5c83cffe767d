package content

import (
	"github.com/klassifikator/backend/internal/domain/shared"
)

// OrganizationContent holds the page copy for one organization.
// Exactly one row exists per organization; Version increments on every save.
type OrganizationContent struct {
	shared.BaseEntity
	OrganizationID  int64  `gorm:"not null;uniqueIndex" json:"organizationId"`
	Title           string `gorm:"type:varchar(255)" json:"title"`
	MetaDescription string `gorm:"type:text" json:"metaDescription"`
	H1              string `gorm:"type:varchar(255)" json:"h1"`
	AboutText       string `gorm:"type:text" json:"aboutText"`
	ContentData     string `gorm:"type:jsonb;default:'{}'" json:"contentData"`
	Version         int    `gorm:"not null;default:1" json:"version"`
}

// TableName returns the table name for GORM
func (OrganizationContent) TableName() string {
	return "organization_contents"
}

// NewOrganizationContent creates the first content revision for an organization
func NewOrganizationContent(organizationID int64) *OrganizationContent {
	return &OrganizationContent{
		OrganizationID: organizationID,
		ContentData:    "{}",
		Version:        1,
	}
}

// BumpVersion increments the content revision counter
func (c *OrganizationContent) BumpVersion() {
	if c.Version < 1 {
		c.Version = 1
		return
	}
	c.Version++
}

package landing

import (
	"github.com/klassifikator/backend/internal/domain/shared"
)

// SeoData holds the SEO metadata block for a single landing
type SeoData struct {
	shared.BaseEntity
	LandingID       int64  `gorm:"not null;uniqueIndex" json:"landingId"`
	Title           string `gorm:"type:varchar(255)" json:"title"`
	MetaDescription string `gorm:"type:text" json:"metaDescription"`
	MetaKeywords    string `gorm:"type:text" json:"metaKeywords"`
	OgTitle         string `gorm:"type:varchar(255)" json:"ogTitle"`
	OgDescription   string `gorm:"type:text" json:"ogDescription"`
	OgImage         string `gorm:"type:varchar(512)" json:"ogImage"`
	SchemaMarkup    string `gorm:"type:text" json:"schemaMarkup"`
}

// TableName returns the table name for GORM
func (SeoData) TableName() string {
	return "seo_data"
}

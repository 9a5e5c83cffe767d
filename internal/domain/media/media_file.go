package media

import (
	"github.com/klassifikator/backend/internal/domain/shared"
)

// MediaFile describes an object stored in S3-compatible storage.
// Filename is the full storage key; FilePath is the public URL.
type MediaFile struct {
	shared.BaseEntity
	OrganizationID   int64  `gorm:"not null;index" json:"organizationId"`
	Filename         string `gorm:"type:varchar(512);not null" json:"filename"`
	OriginalFilename string `gorm:"type:varchar(255)" json:"originalFilename"`
	FilePath         string `gorm:"type:varchar(1024);not null" json:"filePath"`
	FileSize         int64  `gorm:"not null;default:0" json:"fileSize"`
	MimeType         string `gorm:"type:varchar(100)" json:"mimeType"`
	Category         string `gorm:"type:varchar(100)" json:"category"`
	Width            int    `gorm:"not null;default:0" json:"width"`
	Height           int    `gorm:"not null;default:0" json:"height"`
}

// TableName returns the table name for GORM
func (MediaFile) TableName() string {
	return "media_files"
}

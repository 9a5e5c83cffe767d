package template

import (
	"strings"

	"github.com/klassifikator/backend/internal/domain/shared"
)

// Template is a shared HTML/CSS/JS skeleton with named placeholders.
// Many landings reference one template; Version increments on every
// structural edit so compiled forms can be cached by (id, version).
type Template struct {
	shared.BaseEntity
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Description   string `gorm:"type:text" json:"description"`
	Version       int    `gorm:"not null;default:1" json:"version"`
	HTMLStructure string `gorm:"type:text" json:"htmlStructure"`
	CSSStyles     string `gorm:"type:text" json:"cssStyles"`
	JSScripts     string `gorm:"type:text" json:"jsScripts"`
	Config        string `gorm:"type:jsonb;default:'{}'" json:"config"`
	IsActive      bool   `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Template) TableName() string {
	return "templates"
}

// NewTemplate creates a new active template at version 1
func NewTemplate(name, htmlStructure string) (*Template, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Template name cannot be empty")
	}

	return &Template{
		Name:          strings.TrimSpace(name),
		Version:       1,
		HTMLStructure: htmlStructure,
		Config:        "{}",
		IsActive:      true,
	}, nil
}

// BumpVersion increments the template version.
// Call on every edit that changes the rendered output.
func (t *Template) BumpVersion() {
	if t.Version < 1 {
		t.Version = 1
		return
	}
	t.Version++
}

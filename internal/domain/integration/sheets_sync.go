package integration

import (
	"fmt"
	"time"

	"github.com/klassifikator/backend/internal/domain/shared"
)

// DefaultSyncIntervalMinutes is applied when a sync config omits the interval
const DefaultSyncIntervalMinutes = 30

// GoogleSheetsSync is the per-organization spreadsheet sync configuration.
// One row exists per organization.
type GoogleSheetsSync struct {
	shared.BaseEntity
	OrganizationID      int64      `gorm:"not null;uniqueIndex" json:"organizationId"`
	SpreadsheetID       string     `gorm:"type:varchar(255);not null" json:"spreadsheetId"`
	SheetName           string     `gorm:"type:varchar(255);not null" json:"sheetName"`
	SyncIntervalMinutes int        `gorm:"not null;default:30" json:"syncIntervalMinutes"`
	IsActive            bool       `gorm:"not null;default:true" json:"isActive"`
	LastSyncAt          *time.Time `json:"lastSyncAt"`
	LastSyncStatus      string     `gorm:"type:varchar(512)" json:"lastSyncStatus"`
}

// TableName returns the table name for GORM
func (GoogleSheetsSync) TableName() string {
	return "google_sheets_syncs"
}

// NewGoogleSheetsSync creates an active sync configuration
func NewGoogleSheetsSync(organizationID int64, spreadsheetID, sheetName string) (*GoogleSheetsSync, error) {
	if spreadsheetID == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Spreadsheet ID cannot be empty")
	}
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	return &GoogleSheetsSync{
		OrganizationID:      organizationID,
		SpreadsheetID:       spreadsheetID,
		SheetName:           sheetName,
		SyncIntervalMinutes: DefaultSyncIntervalMinutes,
		IsActive:            true,
	}, nil
}

// Due reports whether the next sync pass should run at the given time
func (s *GoogleSheetsSync) Due(now time.Time) bool {
	if !s.IsActive {
		return false
	}
	if s.LastSyncAt == nil {
		return true
	}
	interval := s.SyncIntervalMinutes
	if interval <= 0 {
		interval = DefaultSyncIntervalMinutes
	}
	return now.Sub(*s.LastSyncAt) >= time.Duration(interval)*time.Minute
}

// MarkSuccess records a completed pass
func (s *GoogleSheetsSync) MarkSuccess(now time.Time, processedRows int) {
	s.LastSyncAt = &now
	s.LastSyncStatus = fmt.Sprintf("SUCCESS - Processed %d rows", processedRows)
}

// MarkFailure records a failed pass
func (s *GoogleSheetsSync) MarkFailure(now time.Time, err error) {
	s.LastSyncAt = &now
	s.LastSyncStatus = "FAILED: " + err.Error()
}

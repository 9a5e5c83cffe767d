package integration

import "time"

// CreateSyncRequest registers a spreadsheet sync for an organization
type CreateSyncRequest struct {
	OrganizationID      int64  `json:"organizationId" binding:"required"`
	SpreadsheetID       string `json:"spreadsheetId" binding:"required,max=255"`
	SheetName           string `json:"sheetName" binding:"max=255"`
	SyncIntervalMinutes int    `json:"syncIntervalMinutes" binding:"omitempty,min=1"`
}

// UpdateSyncRequest overwrites a sync configuration
type UpdateSyncRequest struct {
	SpreadsheetID       string `json:"spreadsheetId" binding:"required,max=255"`
	SheetName           string `json:"sheetName" binding:"max=255"`
	SyncIntervalMinutes int    `json:"syncIntervalMinutes" binding:"omitempty,min=1"`
	IsActive            *bool  `json:"isActive"`
}

// SyncSummary reports the outcome of one sync pass
type SyncSummary struct {
	Total     int       `json:"total"`
	Created   int       `json:"created"`
	Updated   int       `json:"updated"`
	Deleted   int       `json:"deleted"`
	Failed    int       `json:"failed"`
	Errors    []string  `json:"errors"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

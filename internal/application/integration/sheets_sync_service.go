package integration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	appcontent "github.com/klassifikator/backend/internal/application/content"
	applanding "github.com/klassifikator/backend/internal/application/landing"
	domain "github.com/klassifikator/backend/internal/domain/integration"
	landingdomain "github.com/klassifikator/backend/internal/domain/landing"
	mediadomain "github.com/klassifikator/backend/internal/domain/media"
)

// SheetReader reads cell ranges and sheet metadata from a spreadsheet
type SheetReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
	SheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
}

// LandingAdmin is the landing-service surface the sync writes through
type LandingAdmin interface {
	Organizations(ctx context.Context) ([]landingdomain.Organization, error)
	CreateOrganization(ctx context.Context, req applanding.CreateOrganizationRequest) (*landingdomain.Organization, error)
	UpdateOrganization(ctx context.Context, id int64, req applanding.UpdateOrganizationRequest) (*landingdomain.Organization, error)
	DeleteOrganization(ctx context.Context, id int64) error
	Landings(ctx context.Context) ([]landingdomain.Landing, error)
	CreateLanding(ctx context.Context, req applanding.CreateLandingRequest) (*landingdomain.Landing, error)
	DeleteLanding(ctx context.Context, id int64) error
}

// ContentAdmin is the content-service surface the sync writes through
type ContentAdmin interface {
	SaveContent(ctx context.Context, req appcontent.SaveContentRequest) error
	ReplaceProducts(ctx context.Context, organizationID int64, reqs []appcontent.ProductRequest) error
	ReplacePromotions(ctx context.Context, organizationID int64, reqs []appcontent.PromotionRequest) error
}

// MediaAdmin uploads remote images through the media service
type MediaAdmin interface {
	UploadFromURL(ctx context.Context, organizationID int64, url, category string) (*mediadomain.MediaFile, error)
}

// goodsRange is the fixed location of the products sheet
const goodsRange = "goods!A:F"

// promotionSheetNames are tried in order; spreadsheets in the wild name
// this sheet inconsistently
var promotionSheetNames = []string{"promotion", "Promotions", "Акции", "акции"}

// defaultTemplateID is assigned to landings created by the sync
const defaultTemplateID = 1

// SyncService keeps organizations, landings and content in step with a
// master spreadsheet. Rows are keyed by domain; a pass creates missing
// records, updates existing ones and removes records whose domain is gone
// from the sheet.
type SyncService struct {
	syncRepo   domain.SyncRepository
	sheets     SheetReader
	landings   LandingAdmin
	contents   ContentAdmin
	media      MediaAdmin
	baseDomain string
	logger     *zap.Logger
	now        func() time.Time
}

// NewSyncService creates a new SyncService
func NewSyncService(
	syncRepo domain.SyncRepository,
	sheets SheetReader,
	landings LandingAdmin,
	contents ContentAdmin,
	media MediaAdmin,
	baseDomain string,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		syncRepo:   syncRepo,
		sheets:     sheets,
		landings:   landings,
		contents:   contents,
		media:      media,
		baseDomain: strings.ToLower(strings.TrimSpace(baseDomain)),
		logger:     logger,
		now:        time.Now,
	}
}

// CreateSync registers a spreadsheet sync configuration
func (s *SyncService) CreateSync(ctx context.Context, req CreateSyncRequest) (*domain.GoogleSheetsSync, error) {
	sync, err := domain.NewGoogleSheetsSync(req.OrganizationID, req.SpreadsheetID, req.SheetName)
	if err != nil {
		return nil, err
	}
	if req.SyncIntervalMinutes > 0 {
		sync.SyncIntervalMinutes = req.SyncIntervalMinutes
	}

	if err := s.syncRepo.Save(ctx, sync); err != nil {
		return nil, err
	}
	return sync, nil
}

// GetSync retrieves a sync configuration
func (s *SyncService) GetSync(ctx context.Context, id int64) (*domain.GoogleSheetsSync, error) {
	return s.syncRepo.FindByID(ctx, id)
}

// ListSyncs retrieves all sync configurations
func (s *SyncService) ListSyncs(ctx context.Context) ([]domain.GoogleSheetsSync, error) {
	return s.syncRepo.FindAll(ctx)
}

// UpdateSync overwrites a sync configuration
func (s *SyncService) UpdateSync(ctx context.Context, id int64, req UpdateSyncRequest) (*domain.GoogleSheetsSync, error) {
	sync, err := s.syncRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sync.SpreadsheetID = req.SpreadsheetID
	if req.SheetName != "" {
		sync.SheetName = req.SheetName
	}
	if req.SyncIntervalMinutes > 0 {
		sync.SyncIntervalMinutes = req.SyncIntervalMinutes
	}
	if req.IsActive != nil {
		sync.IsActive = *req.IsActive
	}

	if err := s.syncRepo.Save(ctx, sync); err != nil {
		return nil, err
	}
	return sync, nil
}

// DeleteSync removes a sync configuration
func (s *SyncService) DeleteSync(ctx context.Context, id int64) error {
	if _, err := s.syncRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.syncRepo.Delete(ctx, id)
}

// SheetNames lists the sheet titles of a spreadsheet
func (s *SyncService) SheetNames(ctx context.Context, spreadsheetID string) ([]string, error) {
	return s.sheets.SheetTitles(ctx, spreadsheetID)
}

// RunSync executes one pass for a sync configuration and records the outcome
func (s *SyncService) RunSync(ctx context.Context, id int64) (*SyncSummary, error) {
	sync, err := s.syncRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.runAndRecord(ctx, sync)
}

// RunDue executes every active sync whose interval has elapsed.
// Passes run sequentially; one failing spreadsheet does not stop the rest.
func (s *SyncService) RunDue(ctx context.Context) {
	syncs, err := s.syncRepo.FindActive(ctx)
	if err != nil {
		s.logger.Error("failed to list active syncs", zap.Error(err))
		return
	}

	now := s.now()
	for i := range syncs {
		if !syncs[i].Due(now) {
			continue
		}
		if _, err := s.runAndRecord(ctx, &syncs[i]); err != nil {
			s.logger.Warn("scheduled sync failed",
				zap.Int64("sync_id", syncs[i].ID),
				zap.String("spreadsheet_id", syncs[i].SpreadsheetID),
				zap.Error(err))
		}
	}
}

func (s *SyncService) runAndRecord(ctx context.Context, sync *domain.GoogleSheetsSync) (*SyncSummary, error) {
	summary, err := s.syncSpreadsheet(ctx, sync)
	now := s.now()
	if err != nil {
		sync.MarkFailure(now, err)
	} else {
		sync.MarkSuccess(now, summary.Total)
	}
	if saveErr := s.syncRepo.Save(ctx, sync); saveErr != nil {
		s.logger.Error("failed to record sync outcome",
			zap.Int64("sync_id", sync.ID), zap.Error(saveErr))
	}
	return summary, err
}

func (s *SyncService) syncSpreadsheet(ctx context.Context, sync *domain.GoogleSheetsSync) (*SyncSummary, error) {
	values, err := s.sheets.ReadRange(ctx, sync.SpreadsheetID, sync.SheetName+"!A:O")
	if err != nil {
		return nil, err
	}

	rows, err := ParseOrganizationRows(values)
	if err != nil {
		return nil, err
	}

	productsByDomain := s.readProducts(ctx, sync.SpreadsheetID)
	promotionsByDomain := s.readPromotions(ctx, sync.SpreadsheetID)

	existingOrgs, err := s.landings.Organizations(ctx)
	if err != nil {
		return nil, err
	}
	orgByID := make(map[int64]*landingdomain.Organization, len(existingOrgs))
	for i := range existingOrgs {
		orgByID[existingOrgs[i].ID] = &existingOrgs[i]
	}

	existingLandings, err := s.landings.Landings(ctx)
	if err != nil {
		return nil, err
	}
	landingByDomain := make(map[string]*landingdomain.Landing, len(existingLandings))
	landingBySubdomain := make(map[string]*landingdomain.Landing, len(existingLandings))
	for i := range existingLandings {
		landingByDomain[existingLandings[i].Domain] = &existingLandings[i]
		landingBySubdomain[existingLandings[i].Subdomain] = &existingLandings[i]
	}

	summary := &SyncSummary{Total: len(rows), Timestamp: s.now()}
	matched := make(map[int64]bool, len(rows))

	for _, row := range rows {
		// A renamed domain still refers to the same site when its derived
		// subdomain matches, so the row updates that landing in place.
		existing := landingByDomain[row.Domain]
		if existing == nil {
			existing = landingBySubdomain[s.subdomainOf(row.Domain)]
		}
		if existing != nil {
			matched[existing.ID] = true
		}
		if err := s.applyRow(ctx, row, existing, orgByID, productsByDomain[row.Domain], promotionsByDomain[row.Domain]); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("row %d (%s): %v", row.RowNumber, row.Domain, err))
			s.logger.Warn("sync row failed",
				zap.Int("row", row.RowNumber),
				zap.String("domain", row.Domain),
				zap.Error(err))
			continue
		}

		if existing != nil {
			summary.Updated++
		} else {
			summary.Created++
		}
	}

	for i := range existingLandings {
		l := &existingLandings[i]
		if matched[l.ID] {
			continue
		}
		if err := s.removeLanding(ctx, l); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("delete %s: %v", l.Domain, err))
			continue
		}
		summary.Deleted++
	}

	if summary.Failed == 0 {
		summary.Status = "SUCCESS"
	} else {
		summary.Status = "PARTIAL"
	}
	return summary, nil
}

func (s *SyncService) readProducts(ctx context.Context, spreadsheetID string) map[string][]ProductRow {
	values, err := s.sheets.ReadRange(ctx, spreadsheetID, goodsRange)
	if err != nil {
		s.logger.Info("goods sheet unavailable", zap.Error(err))
		return nil
	}
	return groupProducts(ParseProductRows(values))
}

func (s *SyncService) readPromotions(ctx context.Context, spreadsheetID string) map[string][]PromotionRow {
	for _, name := range promotionSheetNames {
		values, err := s.sheets.ReadRange(ctx, spreadsheetID, name+"!A:D")
		if err != nil {
			continue
		}
		if rows := ParsePromotionRows(values); len(rows) > 0 {
			return groupPromotions(rows)
		}
	}
	return nil
}

func groupProducts(rows []ProductRow) map[string][]ProductRow {
	grouped := make(map[string][]ProductRow)
	for _, row := range rows {
		grouped[row.Domain] = append(grouped[row.Domain], row)
	}
	return grouped
}

func groupPromotions(rows []PromotionRow) map[string][]PromotionRow {
	grouped := make(map[string][]PromotionRow)
	for _, row := range rows {
		grouped[row.Domain] = append(grouped[row.Domain], row)
	}
	return grouped
}

func (s *SyncService) applyRow(
	ctx context.Context,
	row OrganizationRow,
	existing *landingdomain.Landing,
	orgByID map[int64]*landingdomain.Organization,
	products []ProductRow,
	promotions []PromotionRow,
) error {
	var organizationID int64

	if existing != nil {
		org := orgByID[existing.OrganizationID]
		if org == nil {
			return fmt.Errorf("landing %s references missing organization %d", existing.Domain, existing.OrganizationID)
		}
		if _, err := s.landings.UpdateOrganization(ctx, org.ID, applanding.UpdateOrganizationRequest{
			Name:             row.Name,
			Category:         row.Category,
			Type:             row.Type,
			Address:          row.Address,
			Phone:            row.Phone,
			Email:            row.Email,
			Website:          row.Website,
			WorkingHours:     row.WorkingHours,
			Status:           string(landingdomain.OrganizationStatusActive),
			TelegramBotToken: row.BotToken,
			TelegramChatID:   row.ChatID,
		}); err != nil {
			return fmt.Errorf("update organization: %w", err)
		}
		organizationID = org.ID
	} else {
		org, err := s.landings.CreateOrganization(ctx, applanding.CreateOrganizationRequest{
			Name:             row.Name,
			Category:         row.Category,
			Type:             row.Type,
			Address:          row.Address,
			Phone:            row.Phone,
			Email:            row.Email,
			Website:          row.Website,
			WorkingHours:     row.WorkingHours,
			TelegramBotToken: row.BotToken,
			TelegramChatID:   row.ChatID,
		})
		if err != nil {
			return fmt.Errorf("create organization: %w", err)
		}

		if _, err := s.landings.CreateLanding(ctx, applanding.CreateLandingRequest{
			OrganizationID: org.ID,
			Domain:         row.Domain,
			Subdomain:      s.subdomainOf(row.Domain),
			TemplateID:     defaultTemplateID,
			Status:         string(landingdomain.LandingStatusActive),
		}); err != nil {
			return fmt.Errorf("create landing: %w", err)
		}
		organizationID = org.ID
	}

	if err := s.contents.SaveContent(ctx, appcontent.SaveContentRequest{
		OrganizationID:  organizationID,
		Title:           row.Title,
		MetaDescription: row.Description,
		H1:              row.H1,
		AboutText:       row.About,
	}); err != nil {
		return fmt.Errorf("save content: %w", err)
	}

	if err := s.contents.ReplaceProducts(ctx, organizationID, s.productRequests(ctx, organizationID, products)); err != nil {
		return fmt.Errorf("replace products: %w", err)
	}

	if err := s.contents.ReplacePromotions(ctx, organizationID, promotionRequests(promotions)); err != nil {
		return fmt.Errorf("replace promotions: %w", err)
	}

	return nil
}

func (s *SyncService) removeLanding(ctx context.Context, l *landingdomain.Landing) error {
	if err := s.landings.DeleteLanding(ctx, l.ID); err != nil {
		return err
	}
	return s.landings.DeleteOrganization(ctx, l.OrganizationID)
}

// subdomainOf derives the subdomain from a full domain: the platform
// suffix is stripped when present, otherwise the first label is used
func (s *SyncService) subdomainOf(domain string) string {
	if sub, ok := strings.CutSuffix(domain, "."+s.baseDomain); ok {
		return sub
	}
	if i := strings.IndexByte(domain, '.'); i > 0 {
		return domain[:i]
	}
	return domain
}

func (s *SyncService) productRequests(ctx context.Context, organizationID int64, rows []ProductRow) []appcontent.ProductRequest {
	reqs := make([]appcontent.ProductRequest, 0, len(rows))
	for _, row := range rows {
		req := appcontent.ProductRequest{
			OrganizationID: organizationID,
			Category:       row.Category,
			Name:           row.Name,
			Description:    row.Description,
			Price:          row.Price,
		}
		if row.ImageURL != "" && s.media != nil {
			if f, err := s.media.UploadFromURL(ctx, organizationID, row.ImageURL, "product"); err == nil {
				req.ImageID = &f.ID
			} else {
				s.logger.Warn("product image upload failed",
					zap.String("url", row.ImageURL), zap.Error(err))
			}
		}
		reqs = append(reqs, req)
	}
	return reqs
}

func promotionRequests(rows []PromotionRow) []appcontent.PromotionRequest {
	reqs := make([]appcontent.PromotionRequest, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, appcontent.PromotionRequest{
			Title:       row.Title,
			Description: row.Description,
			EndDate:     row.ValidUntil,
		})
	}
	return reqs
}

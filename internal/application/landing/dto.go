package landing

// CreateOrganizationRequest carries the fields accepted on organization creation
type CreateOrganizationRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=255"`
	Category         string `json:"category" binding:"max=100"`
	Type             string `json:"type" binding:"max=100"`
	Address          string `json:"address"`
	Phone            string `json:"phone" binding:"max=50"`
	Email            string `json:"email" binding:"omitempty,email"`
	Website          string `json:"website" binding:"max=255"`
	WorkingHours     string `json:"workingHours" binding:"max=255"`
	GoogleSheetID    string `json:"googleSheetId"`
	TelegramBotToken string `json:"telegramBotToken"`
	TelegramChatID   string `json:"telegramChatId"`
}

// UpdateOrganizationRequest carries the fields overwritten on update
type UpdateOrganizationRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=255"`
	Category         string `json:"category" binding:"max=100"`
	Type             string `json:"type" binding:"max=100"`
	Address          string `json:"address"`
	Phone            string `json:"phone" binding:"max=50"`
	Email            string `json:"email" binding:"omitempty,email"`
	Website          string `json:"website" binding:"max=255"`
	WorkingHours     string `json:"workingHours" binding:"max=255"`
	Status           string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	GoogleSheetID    string `json:"googleSheetId"`
	TelegramBotToken string `json:"telegramBotToken"`
	TelegramChatID   string `json:"telegramChatId"`
}

// CreateLandingRequest carries the fields accepted on landing creation
type CreateLandingRequest struct {
	OrganizationID int64  `json:"organizationId" binding:"required"`
	Domain         string `json:"domain" binding:"required,max=255"`
	Subdomain      string `json:"subdomain" binding:"required,max=100"`
	TemplateID     int64  `json:"templateId" binding:"required"`
	Status         string `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE"`
}

// UpdateLandingRequest carries the fields overwritten on update
type UpdateLandingRequest struct {
	Domain     string `json:"domain" binding:"required,max=255"`
	Subdomain  string `json:"subdomain" binding:"required,max=100"`
	TemplateID int64  `json:"templateId" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=DRAFT ACTIVE"`
	SSLEnabled *bool  `json:"sslEnabled"`
}

// SaveSeoDataRequest carries the SEO block for a landing
type SaveSeoDataRequest struct {
	Title           string `json:"title" binding:"max=255"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
	OgTitle         string `json:"ogTitle" binding:"max=255"`
	OgDescription   string `json:"ogDescription"`
	OgImage         string `json:"ogImage" binding:"max=512"`
	SchemaMarkup    string `json:"schemaMarkup"`
}

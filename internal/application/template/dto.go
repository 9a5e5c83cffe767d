package template

// CreateTemplateRequest carries fields for creating a template
type CreateTemplateRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Description   string `json:"description"`
	HTMLStructure string `json:"htmlStructure"`
	CSSStyles     string `json:"cssStyles"`
	JSScripts     string `json:"jsScripts"`
	Config        string `json:"config"`
}

// UpdateTemplateRequest carries fields for updating a template
type UpdateTemplateRequest struct {
	Name          string `json:"name" binding:"required,max=255"`
	Description   string `json:"description"`
	HTMLStructure string `json:"htmlStructure"`
	CSSStyles     string `json:"cssStyles"`
	JSScripts     string `json:"jsScripts"`
	Config        string `json:"config"`
	IsActive      *bool  `json:"isActive"`
}

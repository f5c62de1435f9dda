package leads

import (
	"github.com/redhatfunding/leads-api/internal/models"
	"github.com/redhatfunding/leads-api/pkg/constants"
)

// CreateLeadRequest is the apply-form payload. Field names are the camelCase
// keys the front end submits; validation mirrors the form contract.
type CreateLeadRequest struct {
	BusinessType       string `json:"businessType" binding:"required,max=50"`
	AmountRequested    int    `json:"amountRequested" binding:"required,gte=1000"`
	UseOfFunds         string `json:"useOfFunds" binding:"required,max=50"`
	StartMonth         string `json:"startMonth" binding:"required,month"`
	StartYear          string `json:"startYear" binding:"required,len=4,numeric"`
	HasBusinessAccount *bool  `json:"hasBusinessAccount" binding:"required"`
	CompanyName        string `json:"companyName" binding:"required,min=2,max=255"`
	Industry           string `json:"industry" binding:"required,max=255"`
	MonthlyRevenue     *int   `json:"monthlyRevenue" binding:"required,gte=0"`
	Zipcode            string `json:"zipcode" binding:"required,len=5,numeric"`
	FirstName          string `json:"firstName" binding:"required,min=1,max=120"`
	LastName           string `json:"lastName" binding:"required,min=1,max=120"`
	Email              string `json:"email" binding:"required,email,max=255"`
	Phone              string `json:"phone" binding:"required,len=10,numeric"`

	// Anti-abuse signals. Honeypot is a hidden field legitimate users never
	// fill; SubmissionStartedAt is the client-reported form-render time in
	// epoch milliseconds.
	Honeypot            string `json:"honeypot" binding:"omitempty"`
	SubmissionStartedAt *int64 `json:"submissionStartedAt" binding:"omitempty"`

	// Provenance
	Source      string `json:"source" binding:"omitempty,max=120"`
	UserAgent   string `json:"userAgent" binding:"omitempty"`
	UTMCampaign string `json:"utmCampaign" binding:"omitempty,max=120"`
	UTMSource   string `json:"utmSource" binding:"omitempty,max=120"`
	UTMMedium   string `json:"utmMedium" binding:"omitempty,max=120"`
}

// RequestMeta carries connection-level provenance the payload cannot supply.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
}

type CreateLeadResponse struct {
	LeadID uint `json:"lead_id"`
}

// ListLeadsQuery binds the listing endpoint's query parameters.
type ListLeadsQuery struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	Search     string `form:"search"`
	AmountMin  *int   `form:"amount_min"`
	AmountMax  *int   `form:"amount_max"`
	HasAccount *bool  `form:"has_account"`
}

// normalize applies pagination defaults and bounds after binding.
func (q *ListLeadsQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = constants.DefaultPageSize
	}
	if q.PageSize > constants.MaxPageSize {
		q.PageSize = constants.MaxPageSize
	}
}

type LeadResponse struct {
	ID              uint   `json:"id"`
	CreatedAt       string `json:"created_at"`
	BusinessType    string `json:"business_type"`
	AmountRequested int    `json:"amount_requested"`
	UseOfFunds      string `json:"use_of_funds"`
	CompanyName     string `json:"company_name"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
}

type LeadListResponse struct {
	Items    []LeadResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func ToLeadResponse(lead *models.Lead) LeadResponse {
	if lead == nil {
		return LeadResponse{}
	}
	return LeadResponse{
		ID:              lead.ID,
		CreatedAt:       lead.CreatedAt.Format(constants.RFC3339DateTimeFormat),
		BusinessType:    lead.BusinessType,
		AmountRequested: lead.AmountRequested,
		UseOfFunds:      lead.UseOfFunds,
		CompanyName:     lead.CompanyName,
		FirstName:       lead.FirstName,
		LastName:        lead.LastName,
		Email:           lead.Email,
		Phone:           lead.Phone,
	}
}

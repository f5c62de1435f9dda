package models

import "time"

// Lead is a single loan-inquiry submission. Rows are written once on a
// successful form submission and never mutated afterward; UpdatedAt exists
// for schema symmetry only.
type Lead struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;index:ix_leads_created_amount,priority:1" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	BusinessType       string `gorm:"type:varchar(50);not null" json:"business_type"`
	AmountRequested    int    `gorm:"not null;index:ix_leads_created_amount,priority:2" json:"amount_requested"`
	UseOfFunds         string `gorm:"type:varchar(50);not null" json:"use_of_funds"`
	StartMonth         string `gorm:"type:varchar(2);not null" json:"start_month"`
	StartYear          string `gorm:"type:varchar(4);not null" json:"start_year"`
	HasBusinessAccount bool   `gorm:"not null" json:"has_business_account"`
	CompanyName        string `gorm:"type:varchar(255);not null" json:"company_name"`
	Industry           string `gorm:"type:varchar(255);not null" json:"industry"`
	MonthlyRevenue     int    `gorm:"not null" json:"monthly_revenue"`
	Zipcode            string `gorm:"type:varchar(10);not null" json:"zipcode"`
	FirstName          string `gorm:"type:varchar(120);not null" json:"first_name"`
	LastName           string `gorm:"type:varchar(120);not null" json:"last_name"`
	Email              string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone              string `gorm:"type:varchar(20);not null" json:"phone"`

	// Provenance
	Source      string `gorm:"type:varchar(120)" json:"source"`
	UserAgent   string `gorm:"type:text" json:"user_agent"`
	IP          string `gorm:"type:varchar(64)" json:"ip"`
	UTMCampaign string `gorm:"column:utm_campaign;type:varchar(120)" json:"utm_campaign"`
	UTMSource   string `gorm:"column:utm_source;type:varchar(120)" json:"utm_source"`
	UTMMedium   string `gorm:"column:utm_medium;type:varchar(120)" json:"utm_medium"`

	// Server-computed at submission time, never recomputed.
	TimeInBusinessMonths int    `gorm:"not null" json:"time_in_business_months"`
	ReviewHash           string `gorm:"type:varchar(64)" json:"review_hash"`
}

func (Lead) TableName() string {
	return "leads"
}

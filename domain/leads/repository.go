package leads

import (
	"context"
	"strings"
	"time"

	"github.com/redhatfunding/leads-api/internal/models"
	apperrors "github.com/redhatfunding/leads-api/pkg/errors"
	"gorm.io/gorm"
)

// ListFilter is the predicate for the listing query. The same filter drives
// both the page query and the independent total count.
type ListFilter struct {
	Search     string
	AmountMin  *int
	AmountMax  *int
	HasAccount *bool
}

type LeadRepository interface {
	// CreateLead persists a new lead in its own transaction and returns it
	// with identity and timestamps assigned.
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	// ListLeads returns one page of leads matching the filter, most recent
	// first, plus the total count of all matching rows.
	ListLeads(ctx context.Context, filter ListFilter, page, pageSize int) ([]*models.Lead, int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	// Timestamps are assigned here, not by model callbacks, so a lead row
	// carries exactly the submission instant.
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to create lead", err)
	}

	return lead, nil
}

func (r *leadRepository) ListLeads(ctx context.Context, filter ListFilter, page, pageSize int) ([]*models.Lead, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Lead{}).Scopes(applyFilter(filter))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to count leads", err)
	}

	var rows []*models.Lead
	err := r.db.WithContext(ctx).
		Scopes(applyFilter(filter)).
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, apperrors.NewDatabaseError("unable to fetch leads", err)
	}

	return rows, total, nil
}

// applyFilter builds the shared WHERE clause. Search is a case-insensitive
// substring match over company name, "first last" full name, and email. The
// || concatenation operator works on both Postgres and SQLite.
func applyFilter(filter ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(filter.Search); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where(
				"LOWER(company_name) LIKE ? OR LOWER(first_name || ' ' || last_name) LIKE ? OR LOWER(email) LIKE ?",
				like, like, like,
			)
		}
		if filter.AmountMin != nil {
			db = db.Where("amount_requested >= ?", *filter.AmountMin)
		}
		if filter.AmountMax != nil {
			db = db.Where("amount_requested <= ?", *filter.AmountMax)
		}
		if filter.HasAccount != nil {
			db = db.Where("has_business_account = ?", *filter.HasAccount)
		}
		return db
	}
}

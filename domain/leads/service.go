package leads

import (
	"context"
	"strings"
	"time"

	"github.com/redhatfunding/leads-api/internal/log"
	"github.com/redhatfunding/leads-api/internal/models"
	apperrors "github.com/redhatfunding/leads-api/pkg/errors"
)

// defaultSource is recorded when the payload does not say where the
// submission came from.
const defaultSource = "apply_form"

// LeadNotifier schedules the post-creation notifications. Implementations
// must return immediately; delivery happens in the background.
type LeadNotifier interface {
	DispatchLeadCreated(lead *models.Lead)
}

type LeadService interface {
	// CreateLead runs the anti-abuse gate, computes the derived fields, and
	// persists the lead. Notifications are dispatched after the result is
	// determined and never affect it.
	CreateLead(ctx context.Context, req *CreateLeadRequest, meta RequestMeta) (*CreateLeadResponse, error)

	// ListLeads returns one page of leads plus the total matching count.
	ListLeads(ctx context.Context, query *ListLeadsQuery) (*LeadListResponse, error)
}

type leadService struct {
	logger     *log.Logger
	repository LeadRepository
	notifier   LeadNotifier

	// now is swapped out in tests; defaults to time.Now.
	now func() time.Time
}

func NewLeadService(logger *log.Logger, repository LeadRepository, notifier LeadNotifier) LeadService {
	return &leadService{
		logger:     logger,
		repository: repository,
		notifier:   notifier,
		now:        time.Now,
	}
}

func (s *leadService) CreateLead(ctx context.Context, req *CreateLeadRequest, meta RequestMeta) (*CreateLeadResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("CreateLead received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	now := s.now().UTC()

	if err := checkAbuseSignals(req, now); err != nil {
		logger.Warn("Lead submission rejected by abuse gate", "ip", meta.ClientIP)
		return nil, err
	}

	startMonth, startYear, err := parseStartDate(req.StartMonth, req.StartYear)
	if err != nil {
		logger.Error("Failed to parse validated start date", "error", err)
		return nil, apperrors.NewValidationError("Invalid start date", err)
	}

	lead := buildLead(req, meta, now, startMonth, startYear)

	created, err := s.repository.CreateLead(ctx, lead)
	if err != nil {
		logger.Error("Failed to create lead", "error", err)
		return nil, err
	}

	logger.Info("Lead created",
		"lead_id", created.ID,
		"company", created.CompanyName,
		"amount_requested", created.AmountRequested,
	)

	// Fire-and-forget by design: the response is already determined, and a
	// hung or failing transport must not touch it.
	s.notifier.DispatchLeadCreated(created)

	return &CreateLeadResponse{LeadID: created.ID}, nil
}

func (s *leadService) ListLeads(ctx context.Context, query *ListLeadsQuery) (*LeadListResponse, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if query == nil {
		query = &ListLeadsQuery{}
	}
	query.normalize()

	filter := ListFilter{
		Search:     query.Search,
		AmountMin:  query.AmountMin,
		AmountMax:  query.AmountMax,
		HasAccount: query.HasAccount,
	}

	rows, total, err := s.repository.ListLeads(ctx, filter, query.Page, query.PageSize)
	if err != nil {
		logger.Error("Failed to list leads", "error", err)
		return nil, err
	}

	items := make([]LeadResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, ToLeadResponse(row))
	}

	return &LeadListResponse{
		Items:    items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

func buildLead(req *CreateLeadRequest, meta RequestMeta, now time.Time, startMonth, startYear int) *models.Lead {
	source := req.Source
	if source == "" {
		source = defaultSource
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = meta.UserAgent
	}

	return &models.Lead{
		BusinessType:       req.BusinessType,
		AmountRequested:    req.AmountRequested,
		UseOfFunds:         req.UseOfFunds,
		StartMonth:         padStartMonth(req.StartMonth),
		StartYear:          req.StartYear,
		HasBusinessAccount: *req.HasBusinessAccount,
		CompanyName:        req.CompanyName,
		Industry:           req.Industry,
		MonthlyRevenue:     *req.MonthlyRevenue,
		Zipcode:            req.Zipcode,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              strings.ToLower(req.Email),
		Phone:              req.Phone,

		Source:      source,
		UserAgent:   userAgent,
		IP:          meta.ClientIP,
		UTMCampaign: req.UTMCampaign,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,

		TimeInBusinessMonths: timeInBusinessMonths(now, startYear, startMonth),
		ReviewHash:           reviewHash(req.Email, req.AmountRequested, req.StartYear, req.StartMonth),
	}
}

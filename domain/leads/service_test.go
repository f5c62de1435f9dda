package leads

import (
	"context"
	"testing"
	"time"

	"github.com/redhatfunding/leads-api/internal/log"
	"github.com/redhatfunding/leads-api/internal/models"
	apperrors "github.com/redhatfunding/leads-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// fixedNow keeps the derived fields deterministic across test runs.
var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func boolPtr(v bool) *bool    { return &v }
func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func validCreateLeadRequest() *CreateLeadRequest {
	return &CreateLeadRequest{
		BusinessType:        "llc",
		AmountRequested:     50000,
		UseOfFunds:          "equipment",
		StartMonth:          "1",
		StartYear:           "2020",
		HasBusinessAccount:  boolPtr(true),
		CompanyName:         "Doe Logistics",
		Industry:            "transportation",
		MonthlyRevenue:      intPtr(42000),
		Zipcode:             "30301",
		FirstName:           "Jamie",
		LastName:            "Doe",
		Email:               "Jamie@Example.com",
		Phone:               "4045551234",
		SubmissionStartedAt: int64Ptr(fixedNow.Add(-4 * time.Second).UnixMilli()),
	}
}

func newServiceForTest(t *testing.T, repo LeadRepository, notifier LeadNotifier) LeadService {
	t.Helper()

	logger := log.NewLoggerWithJSONOutput()
	service := NewLeadService(logger, repo, notifier)
	service.(*leadService).now = func() time.Time { return fixedNow }

	return service
}

func TestLeadService_CreateLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLeadRepository(ctrl)
	mockNotifier := NewMockLeadNotifier(ctrl)
	service := newServiceForTest(t, mockRepo, mockNotifier)

	meta := RequestMeta{ClientIP: "203.0.113.7", UserAgent: "Mozilla/5.0"}

	t.Run("successful creation", func(t *testing.T) {
		req := validCreateLeadRequest()

		var persisted *models.Lead
		mockRepo.EXPECT().
			CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lead *models.Lead) (*models.Lead, error) {
				persisted = lead
				created := *lead
				created.ID = 42
				return &created, nil
			})
		mockNotifier.EXPECT().DispatchLeadCreated(gomock.Any())

		result, err := service.CreateLead(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, uint(42), result.LeadID)

		assert.Equal(t, "jamie@example.com", persisted.Email)
		assert.Equal(t, "01", persisted.StartMonth)
		assert.Equal(t, "2020", persisted.StartYear)
		assert.Equal(t, 50, persisted.TimeInBusinessMonths)
		assert.Equal(t, reviewHash("Jamie@Example.com", 50000, "2020", "1"), persisted.ReviewHash)
		assert.Equal(t, "apply_form", persisted.Source)
		assert.Equal(t, "Mozilla/5.0", persisted.UserAgent)
		assert.Equal(t, "203.0.113.7", persisted.IP)
	})

	t.Run("payload source and user agent win over defaults", func(t *testing.T) {
		req := validCreateLeadRequest()
		req.Source = "partner_widget"
		req.UserAgent = "widget/1.2"

		var persisted *models.Lead
		mockRepo.EXPECT().
			CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lead *models.Lead) (*models.Lead, error) {
				persisted = lead
				return lead, nil
			})
		mockNotifier.EXPECT().DispatchLeadCreated(gomock.Any())

		_, err := service.CreateLead(context.Background(), req, meta)

		assert.NoError(t, err)
		assert.Equal(t, "partner_widget", persisted.Source)
		assert.Equal(t, "widget/1.2", persisted.UserAgent)
	})

	t.Run("honeypot rejected without persisting", func(t *testing.T) {
		req := validCreateLeadRequest()
		req.Honeypot = "http://spam.example"

		result, err := service.CreateLead(context.Background(), req, meta)

		assert.Error(t, err)
		assert.Nil(t, result)

		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Invalid submission", appErr.Message)
	})

	t.Run("too fast submission rejected", func(t *testing.T) {
		req := validCreateLeadRequest()
		req.SubmissionStartedAt = int64Ptr(fixedNow.Add(-time.Second).UnixMilli())

		result, err := service.CreateLead(context.Background(), req, meta)

		assert.Error(t, err)
		assert.Nil(t, result)

		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Submission too fast", appErr.Message)
	})

	t.Run("elapsed time exactly at the threshold passes", func(t *testing.T) {
		req := validCreateLeadRequest()
		req.SubmissionStartedAt = int64Ptr(fixedNow.Add(-minSubmitElapsed).UnixMilli())

		mockRepo.EXPECT().
			CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lead *models.Lead) (*models.Lead, error) {
				return lead, nil
			})
		mockNotifier.EXPECT().DispatchLeadCreated(gomock.Any())

		_, err := service.CreateLead(context.Background(), req, meta)

		assert.NoError(t, err)
	})

	t.Run("missing timing signal is not rejected", func(t *testing.T) {
		req := validCreateLeadRequest()
		req.SubmissionStartedAt = nil

		mockRepo.EXPECT().
			CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, lead *models.Lead) (*models.Lead, error) {
				return lead, nil
			})
		mockNotifier.EXPECT().DispatchLeadCreated(gomock.Any())

		_, err := service.CreateLead(context.Background(), req, meta)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		req := validCreateLeadRequest()

		mockRepo.EXPECT().
			CreateLead(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewDatabaseError("database error", nil))

		result, err := service.CreateLead(context.Background(), req, meta)

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("nil request", func(t *testing.T) {
		result, err := service.CreateLead(context.Background(), nil, meta)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestLeadService_ListLeads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockLeadRepository(ctrl)
	mockNotifier := NewMockLeadNotifier(ctrl)
	service := newServiceForTest(t, mockRepo, mockNotifier)

	t.Run("defaults applied to an empty query", func(t *testing.T) {
		mockRepo.EXPECT().
			ListLeads(gomock.Any(), ListFilter{}, 1, 20).
			Return([]*models.Lead{}, int64(0), nil)

		result, err := service.ListLeads(context.Background(), &ListLeadsQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 20, result.PageSize)
		assert.Equal(t, int64(0), result.Total)
		assert.Empty(t, result.Items)
	})

	t.Run("page size capped", func(t *testing.T) {
		mockRepo.EXPECT().
			ListLeads(gomock.Any(), ListFilter{}, 3, 100).
			Return([]*models.Lead{}, int64(0), nil)

		result, err := service.ListLeads(context.Background(), &ListLeadsQuery{Page: 3, PageSize: 500})

		assert.NoError(t, err)
		assert.Equal(t, 100, result.PageSize)
	})

	t.Run("rows mapped and total preserved", func(t *testing.T) {
		rows := []*models.Lead{
			{ID: 2, CompanyName: "Doe Logistics", Email: "jamie@example.com", AmountRequested: 50000},
			{ID: 1, CompanyName: "Acme Corp", Email: "pat@acme.example", AmountRequested: 12000},
		}
		mockRepo.EXPECT().
			ListLeads(gomock.Any(), gomock.Any(), 1, 20).
			Return(rows, int64(7), nil)

		result, err := service.ListLeads(context.Background(), &ListLeadsQuery{})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), result.Total)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, uint(2), result.Items[0].ID)
		assert.Equal(t, "jamie@example.com", result.Items[0].Email)
	})

	t.Run("filters forwarded to the repository", func(t *testing.T) {
		filter := ListFilter{
			Search:     "doe",
			AmountMin:  intPtr(10000),
			AmountMax:  intPtr(90000),
			HasAccount: boolPtr(true),
		}
		mockRepo.EXPECT().
			ListLeads(gomock.Any(), filter, 1, 20).
			Return([]*models.Lead{}, int64(0), nil)

		_, err := service.ListLeads(context.Background(), &ListLeadsQuery{
			Search:     "doe",
			AmountMin:  intPtr(10000),
			AmountMax:  intPtr(90000),
			HasAccount: boolPtr(true),
		})

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			ListLeads(gomock.Any(), gomock.Any(), 1, 20).
			Return(nil, int64(0), apperrors.NewDatabaseError("database error", nil))

		result, err := service.ListLeads(context.Background(), &ListLeadsQuery{})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

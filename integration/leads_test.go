package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redhatfunding/leads-api/config"
	"github.com/redhatfunding/leads-api/config/router"
	"github.com/redhatfunding/leads-api/domain"
	"github.com/redhatfunding/leads-api/internal/log"
	"github.com/redhatfunding/leads-api/internal/models"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testAPIKey = "test-key"

type LeadsAPITestSuite struct {
	suite.Suite
	db        *gorm.DB
	server    *httptest.Server
	baseURL   string
	logger    *log.Logger
	appConfig *config.ApplicationConfig
}

func (suite *LeadsAPITestSuite) SetupSuite() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Lead{})
	suite.Require().NoError(err)

	suite.logger = log.NewLoggerWithJSONOutput()

	appSettings := config.NewAppConfig()
	appSettings.APIKey = testAPIKey

	suite.appConfig = &config.ApplicationConfig{
		DB:     suite.db,
		Logger: suite.logger,
		Config: appSettings,
	}

	suite.appConfig.RouterService = router.CreateRouterService(suite.logger, nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    30 * time.Second,
	})

	domain.SetupCoreDomain(suite.appConfig)

	suite.server = httptest.NewServer(suite.appConfig.RouterService.GetEngine())
	suite.baseURL = suite.server.URL
}

func (suite *LeadsAPITestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		sqlDB.Close()
	}
}

func (suite *LeadsAPITestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM leads")
}

// validSubmission mimics what the apply form posts, with the timing signal
// far enough in the past to pass the abuse gate.
func (suite *LeadsAPITestSuite) validSubmission() map[string]any {
	return map[string]any{
		"businessType":        "llc",
		"amountRequested":     50000,
		"useOfFunds":          "equipment",
		"startMonth":          "1",
		"startYear":           "2020",
		"hasBusinessAccount":  true,
		"companyName":         "Doe Logistics",
		"industry":            "transportation",
		"monthlyRevenue":      42000,
		"zipcode":             "30301",
		"firstName":           "Jamie",
		"lastName":            "Doe",
		"email":               "Jamie@Example.com",
		"phone":               "4045551234",
		"submissionStartedAt": time.Now().Add(-4 * time.Second).UnixMilli(),
	}
}

func (suite *LeadsAPITestSuite) postLead(payload map[string]any) *http.Response {
	jsonBody, err := json.Marshal(payload)
	suite.Require().NoError(err)

	resp, err := http.Post(suite.baseURL+"/api/leads", "application/json", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	return resp
}

func (suite *LeadsAPITestSuite) getLeads(query string, apiKey string) *http.Response {
	req, err := http.NewRequest(http.MethodGet, suite.baseURL+"/api/leads"+query, nil)
	suite.Require().NoError(err)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	return resp
}

func (suite *LeadsAPITestSuite) leadCount() int64 {
	var count int64
	suite.db.Model(&models.Lead{}).Count(&count)
	return count
}

func (suite *LeadsAPITestSuite) TestHealthCheck() {
	resp, err := http.Get(suite.baseURL + "/api/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var response map[string]string
	err = json.NewDecoder(resp.Body).Decode(&response)
	suite.Require().NoError(err)

	suite.Equal("ok", response["status"])
}

func (suite *LeadsAPITestSuite) TestStatusEndpoint() {
	resp, err := http.Get(suite.baseURL + "/api/status")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var status map[string]any
	err = json.NewDecoder(resp.Body).Decode(&status)
	suite.Require().NoError(err)

	suite.Equal(float64(1), status["database"])
	suite.Contains(status, "uptime")
}

func (suite *LeadsAPITestSuite) TestSubmitAndListLead() {
	resp := suite.postLead(suite.validSubmission())
	defer resp.Body.Close()

	suite.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]any
	err := json.NewDecoder(resp.Body).Decode(&created)
	suite.Require().NoError(err)
	suite.Greater(created["lead_id"], float64(0))

	listResp := suite.getLeads("?search=jamie", testAPIKey)
	defer listResp.Body.Close()

	suite.Equal(http.StatusOK, listResp.StatusCode)

	var listing struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
		Page  int              `json:"page"`
	}
	err = json.NewDecoder(listResp.Body).Decode(&listing)
	suite.Require().NoError(err)

	suite.Equal(int64(1), listing.Total)
	suite.Require().Len(listing.Items, 1)
	suite.Equal("jamie@example.com", listing.Items[0]["email"])
	suite.Equal("Doe Logistics", listing.Items[0]["company_name"])

	var stored models.Lead
	suite.Require().NoError(suite.db.First(&stored).Error)
	suite.Equal("01", stored.StartMonth)
	suite.Equal("apply_form", stored.Source)
	suite.Len(stored.ReviewHash, 64)
	suite.Greater(stored.TimeInBusinessMonths, 0)
}

func (suite *LeadsAPITestSuite) TestSubmitLead_ValidationError() {
	payload := suite.validSubmission()
	payload["amountRequested"] = 999
	payload["email"] = "not-an-email"

	resp := suite.postLead(payload)
	defer resp.Body.Close()

	suite.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Fields  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	err := json.NewDecoder(resp.Body).Decode(&envelope)
	suite.Require().NoError(err)

	suite.Equal("validation_error", envelope.Code)

	fieldNames := make([]string, 0, len(envelope.Fields))
	for _, f := range envelope.Fields {
		fieldNames = append(fieldNames, f.Field)
	}
	suite.Contains(fieldNames, "amountRequested")
	suite.Contains(fieldNames, "email")
	suite.Equal(int64(0), suite.leadCount())
}

func (suite *LeadsAPITestSuite) TestSubmitLead_MinimumAmountAccepted() {
	payload := suite.validSubmission()
	payload["amountRequested"] = 1000

	resp := suite.postLead(payload)
	defer resp.Body.Close()

	suite.Equal(http.StatusCreated, resp.StatusCode)
}

func (suite *LeadsAPITestSuite) TestSubmitLead_HoneypotRejected() {
	payload := suite.validSubmission()
	payload["honeypot"] = "http://spam.example"

	resp := suite.postLead(payload)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	var envelope map[string]any
	err := json.NewDecoder(resp.Body).Decode(&envelope)
	suite.Require().NoError(err)

	suite.Equal("bad_request", envelope["code"])
	suite.Equal("Invalid submission", envelope["message"])
	suite.Equal(int64(0), suite.leadCount())
}

func (suite *LeadsAPITestSuite) TestSubmitLead_TooFastRejected() {
	payload := suite.validSubmission()
	payload["submissionStartedAt"] = time.Now().Add(-500 * time.Millisecond).UnixMilli()

	resp := suite.postLead(payload)
	defer resp.Body.Close()

	suite.Equal(http.StatusBadRequest, resp.StatusCode)

	var envelope map[string]any
	err := json.NewDecoder(resp.Body).Decode(&envelope)
	suite.Require().NoError(err)

	suite.Equal("Submission too fast", envelope["message"])
	suite.Equal(int64(0), suite.leadCount())
}

func (suite *LeadsAPITestSuite) TestListLeads_RequiresAPIKey() {
	resp := suite.getLeads("", "")
	defer resp.Body.Close()

	suite.Equal(http.StatusUnauthorized, resp.StatusCode)

	var envelope map[string]any
	err := json.NewDecoder(resp.Body).Decode(&envelope)
	suite.Require().NoError(err)

	suite.Equal("unauthorized", envelope["code"])

	wrongResp := suite.getLeads("", "wrong-key")
	defer wrongResp.Body.Close()

	suite.Equal(http.StatusUnauthorized, wrongResp.StatusCode)
}

func (suite *LeadsAPITestSuite) seedLeads() {
	rows := []models.Lead{
		{CompanyName: "Acme Corp", FirstName: "Pat", LastName: "Smith", Email: "pat@acme.example", AmountRequested: 12000, HasBusinessAccount: true},
		{CompanyName: "Beta LLC", FirstName: "Sam", LastName: "Jones", Email: "sam@beta.example", AmountRequested: 50000, HasBusinessAccount: false},
		{CompanyName: "Gamma Inc", FirstName: "Lee", LastName: "Brown", Email: "lee@gamma.example", AmountRequested: 90000, HasBusinessAccount: true},
	}
	for i := range rows {
		suite.Require().NoError(suite.db.Create(&rows[i]).Error)
	}
}

func (suite *LeadsAPITestSuite) listTotal(query string) (int64, int) {
	resp := suite.getLeads(query, testAPIKey)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var listing struct {
		Items []map[string]any `json:"items"`
		Total int64            `json:"total"`
	}
	err := json.NewDecoder(resp.Body).Decode(&listing)
	suite.Require().NoError(err)

	return listing.Total, len(listing.Items)
}

func (suite *LeadsAPITestSuite) TestListLeads_Filters() {
	suite.seedLeads()

	// Bounds are inclusive.
	total, _ := suite.listTotal("?amount_min=12000&amount_max=50000")
	suite.Equal(int64(2), total)

	total, _ = suite.listTotal("?amount_min=50001")
	suite.Equal(int64(1), total)

	total, _ = suite.listTotal("?has_account=true")
	suite.Equal(int64(2), total)

	total, _ = suite.listTotal("?search=acme")
	suite.Equal(int64(1), total)

	// Search matches the contact name too.
	total, _ = suite.listTotal("?search=sam%20jones")
	suite.Equal(int64(1), total)
}

func (suite *LeadsAPITestSuite) TestListLeads_PaginationTotalIsIndependent() {
	suite.seedLeads()

	total, pageLen := suite.listTotal("?page_size=1")
	suite.Equal(int64(3), total)
	suite.Equal(1, pageLen)

	total, pageLen = suite.listTotal("?page=4&page_size=1")
	suite.Equal(int64(3), total)
	suite.Equal(0, pageLen)
}

func (suite *LeadsAPITestSuite) TestListLeads_NewestFirst() {
	for i := 0; i < 3; i++ {
		payload := suite.validSubmission()
		payload["companyName"] = fmt.Sprintf("Company %d", i)
		payload["email"] = fmt.Sprintf("owner%d@example.com", i)

		resp := suite.postLead(payload)
		resp.Body.Close()
		suite.Equal(http.StatusCreated, resp.StatusCode)
	}

	resp := suite.getLeads("", testAPIKey)
	defer resp.Body.Close()

	var listing struct {
		Items []map[string]any `json:"items"`
	}
	err := json.NewDecoder(resp.Body).Decode(&listing)
	suite.Require().NoError(err)

	suite.Require().Len(listing.Items, 3)
	suite.Equal("Company 2", listing.Items[0]["company_name"])
	suite.Equal("Company 0", listing.Items[2]["company_name"])
}

func TestLeadsAPITestSuite(t *testing.T) {
	suite.Run(t, new(LeadsAPITestSuite))
}

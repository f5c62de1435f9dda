package notify

import (
	"fmt"
	"sync"

	"github.com/redhatfunding/leads-api/internal/log"
	"github.com/redhatfunding/leads-api/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// Dispatcher fans out the three per-lead notifications. DispatchLeadCreated
// returns immediately; the sends run detached from the request that created
// the lead, concurrently with each other, and a failure in one never affects
// the other two.
type Dispatcher struct {
	email  *EmailNotifier
	slack  *SlackNotifier
	logger *log.Logger

	// wg lets tests wait for in-flight sends; production code never waits.
	wg sync.WaitGroup
}

func NewDispatcher(cfg Config, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		email:  NewEmailNotifier(cfg, logger),
		slack:  NewSlackNotifier(cfg, logger),
		logger: logger,
	}
}

// DispatchLeadCreated schedules the sales alert, the applicant
// autoresponder, and the Slack alert as a fire-and-forget background task.
func (d *Dispatcher) DispatchLeadCreated(lead *models.Lead) {
	summary := LeadSummary(lead)
	slackText := amountPrinter.Sprintf(
		":rotating_light: New lead #%d — %s requesting $%d",
		lead.ID, lead.CompanyName, lead.AmountRequested,
	)
	applicantEmail := lead.Email
	leadID := lead.ID

	d.wg.Add(3)

	go func() {
		defer d.wg.Done()
		d.run("sales_alert", leadID, func() error {
			return d.email.SendLeadNotification(summary)
		})
	}()

	go func() {
		defer d.wg.Done()
		d.run("autoresponder", leadID, func() error {
			return d.email.SendAutoresponder(applicantEmail, AutoresponderBody)
		})
	}()

	go func() {
		defer d.wg.Done()
		d.run("slack_alert", leadID, func() error {
			return d.slack.Send(slackText)
		})
	}()
}

// run isolates a single send: errors and panics are logged, never propagated,
// never retried.
func (d *Dispatcher) run(name string, leadID uint, send func() error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Notification send panicked", "notification", name, "lead_id", leadID, "panic", fmt.Sprint(r))
		}
	}()

	if err := send(); err != nil {
		d.logger.Error("Notification send failed", "notification", name, "lead_id", leadID, "error", err)
	}
}

// Wait blocks until all dispatched sends have finished. Only tests use it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// LeadSummary renders the multi-line sales-alert body for a lead.
func LeadSummary(lead *models.Lead) string {
	return amountPrinter.Sprintf(
		"New lead #%d\nCompany: %s\nContact: %s %s — %s\nAmount requested: $%d\nUse: %s\n",
		lead.ID,
		lead.CompanyName,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.AmountRequested,
		lead.UseOfFunds,
	)
}

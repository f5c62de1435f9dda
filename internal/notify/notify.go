// Package notify delivers the three per-lead notifications: the internal
// sales alert email, the applicant autoresponder, and the Slack channel
// alert. Every transport degrades to a local log entry when its credentials
// are unset, so the service works out of the box with no configuration.
//
// Delivery is strictly best-effort. Failures are logged and swallowed, never
// retried, and never surfaced to the request that triggered them.
package notify

// Config carries the transport settings for all notifiers. It is a copy of
// the relevant application-config fields, taken once at construction.
type Config struct {
	SalesInbox      string
	SlackWebhookURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

const (
	salesAlertSubject    = "New RedHat Funding lead"
	autoresponderSubject = "Thanks for applying to RedHat Funding"

	// AutoresponderBody is the fixed thank-you message sent to every applicant.
	AutoresponderBody = "Thanks for applying to RedHat Funding! A funding specialist will contact you shortly."
)

package notify

import (
	"fmt"
	"net/smtp"

	"github.com/redhatfunding/leads-api/internal/log"
)

// EmailNotifier sends plain-text mail over SMTP. When the SMTP credentials
// are not configured the message body is written to the log instead and no
// error is returned.
type EmailNotifier struct {
	cfg    Config
	logger *log.Logger

	// send is swapped out in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailNotifier(cfg Config, logger *log.Logger) *EmailNotifier {
	return &EmailNotifier{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

func (n *EmailNotifier) configured() bool {
	return n.cfg.SMTPHost != "" && n.cfg.SMTPUsername != "" && n.cfg.SMTPPassword != ""
}

// SendLeadNotification mails the sales inbox a formatted lead summary.
func (n *EmailNotifier) SendLeadNotification(leadSummary string) error {
	if !n.configured() {
		n.logger.Info("Email notification (console fallback)", "body", leadSummary)
		return nil
	}

	return n.deliver(n.cfg.SalesInbox, salesAlertSubject, leadSummary)
}

// SendAutoresponder mails the applicant the fixed thank-you message.
func (n *EmailNotifier) SendAutoresponder(toEmail, body string) error {
	if !n.configured() {
		n.logger.Info("Autoresponder (console fallback)", "to", toEmail, "body", body)
		return nil
	}

	return n.deliver(toEmail, autoresponderSubject, body)
}

func (n *EmailNotifier) deliver(to, subject, body string) error {
	message := fmt.Sprintf("From: %s\r\n", n.cfg.SalesInbox) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n"

	auth := smtp.PlainAuth("", n.cfg.SMTPUsername, n.cfg.SMTPPassword, n.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)

	if err := n.send(addr, auth, n.cfg.SalesInbox, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

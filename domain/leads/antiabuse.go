package leads

import (
	"time"

	apperrors "github.com/redhatfunding/leads-api/pkg/errors"
)

// minSubmitElapsed is the shortest believable time between the form being
// rendered and a human submitting it. Anything faster is treated as a bot.
const minSubmitElapsed = 2500 * time.Millisecond

// checkAbuseSignals runs the honeypot and minimum-elapsed-time gates. The
// rejection messages are deliberately generic so automated submitters learn
// nothing about which check tripped.
func checkAbuseSignals(req *CreateLeadRequest, now time.Time) error {
	if req.Honeypot != "" {
		return apperrors.NewInvalidRequestError("Invalid submission", nil)
	}

	// No timing signal when the client did not report a start time.
	if req.SubmissionStartedAt == nil {
		return nil
	}

	elapsed := now.UnixMilli() - *req.SubmissionStartedAt
	if elapsed < minSubmitElapsed.Milliseconds() {
		return apperrors.NewInvalidRequestError("Submission too fast", nil)
	}

	return nil
}

package leads

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeInBusinessMonths computes whole months between the business start date
// and now (UTC), clamped at zero for future start dates. The result is frozen
// into the lead at submission time and never recomputed.
func timeInBusinessMonths(now time.Time, startYear, startMonth int) int {
	now = now.UTC()
	months := (now.Year()-startYear)*12 + (int(now.Month()) - startMonth)
	if months < 0 {
		return 0
	}
	return months
}

// padStartMonth normalizes a 1 or 2 digit month string to two digits for
// storage.
func padStartMonth(startMonth string) string {
	if len(startMonth) >= 2 {
		return startMonth
	}
	return "0" + startMonth
}

// reviewHash fingerprints a submission from its lowercased email, requested
// amount, and start date, exactly as submitted. It is a soft
// duplicate-detection signal for manual review; collisions are acceptable and
// no uniqueness is enforced on it.
func reviewHash(email string, amountRequested int, startYear, startMonth string) string {
	source := fmt.Sprintf("%s-%d-%s%s", strings.ToLower(email), amountRequested, startYear, startMonth)
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// parseStartDate converts the validated month and year strings to ints. The
// binding layer guarantees the formats, so failures here indicate a bug.
func parseStartDate(startMonth, startYear string) (month, year int, err error) {
	month, err = strconv.Atoi(startMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start month %q: %w", startMonth, err)
	}
	year, err = strconv.Atoi(startYear)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start year %q: %w", startYear, err)
	}
	return month, year, nil
}

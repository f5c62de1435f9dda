package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeInBusinessMonths(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		startYear  int
		startMonth int
		expected   int
	}{
		{"several years back", 2020, 1, 50},
		{"same month", 2024, 3, 0},
		{"earlier this year", 2024, 1, 2},
		{"future start date clamps to zero", 2025, 6, 0},
		{"next month clamps to zero", 2024, 4, 0},
		{"day of month is ignored", 2024, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timeInBusinessMonths(now, tt.startYear, tt.startMonth))
		})
	}
}

func TestPadStartMonth(t *testing.T) {
	assert.Equal(t, "01", padStartMonth("1"))
	assert.Equal(t, "09", padStartMonth("9"))
	assert.Equal(t, "10", padStartMonth("10"))
	assert.Equal(t, "12", padStartMonth("12"))
}

func TestReviewHash(t *testing.T) {
	t.Run("stable for identical input", func(t *testing.T) {
		first := reviewHash("jamie@example.com", 50000, "2020", "1")
		second := reviewHash("jamie@example.com", 50000, "2020", "1")

		assert.Equal(t, first, second)
		assert.Len(t, first, 64)
	})

	t.Run("email casing does not change the hash", func(t *testing.T) {
		assert.Equal(t,
			reviewHash("jamie@example.com", 50000, "2020", "1"),
			reviewHash("Jamie@Example.COM", 50000, "2020", "1"),
		)
	})

	t.Run("month stays exactly as submitted", func(t *testing.T) {
		assert.NotEqual(t,
			reviewHash("jamie@example.com", 50000, "2020", "1"),
			reviewHash("jamie@example.com", 50000, "2020", "01"),
		)
	})

	t.Run("amount changes the hash", func(t *testing.T) {
		assert.NotEqual(t,
			reviewHash("jamie@example.com", 50000, "2020", "1"),
			reviewHash("jamie@example.com", 50001, "2020", "1"),
		)
	})
}

func TestParseStartDate(t *testing.T) {
	month, year, err := parseStartDate("07", "2019")

	assert.NoError(t, err)
	assert.Equal(t, 7, month)
	assert.Equal(t, 2019, year)

	_, _, err = parseStartDate("july", "2019")
	assert.Error(t, err)
}

package leave_test

import (
	"testing"
	"time"

	"github.com/Arun-hash30/Attendence-helix/internal/leave"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	assert.NoError(t, err)
	return d
}

func TestCountChargeableDays(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		halfDay bool
		want    float64
	}{
		{"single weekday", "2024-03-04", "2024-03-04", false, 1},
		{"single saturday", "2024-03-02", "2024-03-02", false, 0},
		{"single sunday", "2024-03-03", "2024-03-03", false, 0},
		{"monday to friday", "2024-03-04", "2024-03-08", false, 5},
		{"spans weekend", "2024-03-07", "2024-03-12", false, 4},
		{"weekend only range", "2024-03-09", "2024-03-10", false, 0},
		{"two full weeks", "2024-03-04", "2024-03-17", false, 10},
		{"crosses leap day", "2024-02-28", "2024-03-01", false, 3},
		{"half day single", "2024-03-04", "2024-03-04", true, 0.5},
		{"half day on weekend", "2024-03-02", "2024-03-02", true, 0.5},
		{"half day over range", "2024-03-04", "2024-03-08", true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := leave.CountChargeableDays(date(t, tt.from), date(t, tt.to), tt.halfDay)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountChargeableDays_IgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 4, 23, 30, 0, 0, time.UTC)
	to := time.Date(2024, 3, 5, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, float64(2), leave.CountChargeableDays(from, to, false))
}

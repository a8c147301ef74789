package leave

import (
	"strings"
	"time"

	leaveerrors "github.com/Arun-hash30/Attendence-helix/internal/leave/errors"
)

const dateLayout = "2006-01-02"

// CountChargeableDays menghitung hari kerja (Senin-Jumat) dalam rentang [from, to].
// Half day selalu bernilai 0.5 berapapun panjang rentangnya.
func CountChargeableDays(from, to time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}

	start := truncateDate(from)
	end := truncateDate(to)

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		days++
	}
	return float64(days)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func normalizeType(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}

func isKnownType(t string) bool {
	switch t {
	case TypeCasual, TypeSick, TypeAnnual, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	}
	return false
}

func isTrackedType(t string) bool {
	switch normalizeType(t) {
	case TypeCasual, TypeSick, TypeAnnual:
		return true
	}
	return false
}

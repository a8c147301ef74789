package leave

import (
	"fmt"
	"time"
)

const defaultEventColor = "#9ca3af"

var statusColors = map[string]string{
	StatusPending:   "#f59e0b",
	StatusApproved:  "#10b981",
	StatusRejected:  "#ef4444",
	StatusCancelled: "#6b7280",
}

var typeColors = map[string]string{
	TypeCasual:    "#3b82f6",
	TypeSick:      "#8b5cf6",
	TypeAnnual:    "#06b6d4",
	TypeMaternity: "#ec4899",
	TypePaternity: "#6366f1",
	TypeUnpaid:    "#64748b",
}

// EventColor: warna status dulu, lalu warna tipe, terakhir abu-abu.
func EventColor(status, leaveType string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	if c, ok := typeColors[normalizeType(leaveType)]; ok {
		return c
	}
	return defaultEventColor
}

// MonthRange returns the first and last calendar day of the month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

func Overlaps(from, to, monthStart, monthEnd time.Time) bool {
	return !truncateDate(from).After(monthEnd) && !truncateDate(to).Before(monthStart)
}

// BuildCalendarEvents memproyeksikan leave request yang beririsan dengan bulan tsb.
// End bernilai toDate + 1 hari (eksklusif) sesuai konvensi library kalender.
func BuildCalendarEvents(requests []LeaveRequest, year, month int) []CalendarEvent {
	monthStart, monthEnd := MonthRange(year, month)

	events := make([]CalendarEvent, 0, len(requests))
	for _, r := range requests {
		if !Overlaps(r.FromDate, r.ToDate, monthStart, monthEnd) {
			continue
		}

		userName := ""
		if r.User != nil {
			userName = r.User.Name
			if userName == "" {
				userName = r.User.Email
			}
		}

		events = append(events, CalendarEvent{
			ID:       r.ID,
			Title:    fmt.Sprintf("%s - %s", userName, r.Type),
			Start:    r.FromDate.Format(dateLayout),
			End:      truncateDate(r.ToDate).AddDate(0, 0, 1).Format(dateLayout),
			Type:     r.Type,
			Status:   r.Status,
			UserID:   r.UserID,
			UserName: userName,
			AllDay:   true,
			Color:    EventColor(r.Status, r.Type),
		})
	}
	return events
}

func calendarCacheKey(year, month int, userID uint) string {
	scope := "all"
	if userID != 0 {
		scope = fmt.Sprintf("%d", userID)
	}
	return fmt.Sprintf("leave:calendar:%d:%d:%s", year, month, scope)
}

// calendarKeysFor mengembalikan semua key cache bulan yang dilalui request.
func calendarKeysFor(userID uint, from, to time.Time) []string {
	var keys []string
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(last) {
		y, m := cur.Year(), int(cur.Month())
		keys = append(keys, calendarCacheKey(y, m, 0), calendarCacheKey(y, m, userID))
		cur = cur.AddDate(0, 1, 0)
	}
	return keys
}

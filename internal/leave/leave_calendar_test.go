package leave_test

import (
	"testing"
	"time"

	"github.com/Arun-hash30/Attendence-helix/internal/leave"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestMonthRange(t *testing.T) {
	start, end := leave.MonthRange(2024, 2)
	assert.Equal(t, day("2024-02-01"), start)
	assert.Equal(t, day("2024-02-29"), end)

	start, end = leave.MonthRange(2023, 12)
	assert.Equal(t, day("2023-12-01"), start)
	assert.Equal(t, day("2023-12-31"), end)
}

func TestOverlaps(t *testing.T) {
	ms, me := leave.MonthRange(2024, 3)

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"inside", "2024-03-04", "2024-03-06", true},
		{"starts before", "2024-02-28", "2024-03-02", true},
		{"ends after", "2024-03-30", "2024-04-02", true},
		{"covers month", "2024-02-20", "2024-04-10", true},
		{"last day only", "2024-03-31", "2024-03-31", true},
		{"before", "2024-02-01", "2024-02-29", false},
		{"after", "2024-04-01", "2024-04-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leave.Overlaps(day(tt.from), day(tt.to), ms, me))
		})
	}
}

func TestEventColor(t *testing.T) {
	assert.Equal(t, "#10b981", leave.EventColor(leave.StatusApproved, leave.TypeSick))
	assert.Equal(t, "#f59e0b", leave.EventColor(leave.StatusPending, leave.TypeCasual))
	assert.Equal(t, "#8b5cf6", leave.EventColor("UNKNOWN", "sick"))
	assert.Equal(t, "#9ca3af", leave.EventColor("UNKNOWN", "SABBATICAL"))
}

func TestBuildCalendarEvents(t *testing.T) {
	requests := []leave.LeaveRequest{
		{
			ID: 1, UserID: 7, Type: leave.TypeCasual, Status: leave.StatusApproved,
			FromDate: day("2024-02-28"), ToDate: day("2024-03-02"),
			User: &leave.LeaveUser{ID: 7, Name: "Alice", Email: "alice@example.com"},
		},
		{
			ID: 2, UserID: 8, Type: leave.TypeSick, Status: leave.StatusPending,
			FromDate: day("2024-03-11"), ToDate: day("2024-03-11"),
			User: &leave.LeaveUser{ID: 8, Email: "bob@example.com"},
		},
		{
			ID: 3, UserID: 9, Type: leave.TypeAnnual, Status: leave.StatusApproved,
			FromDate: day("2024-04-01"), ToDate: day("2024-04-05"),
		},
	}

	events := leave.BuildCalendarEvents(requests, 2024, 3)

	assert.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, "Alice - CASUAL", first.Title)
	assert.Equal(t, "2024-02-28", first.Start)
	assert.Equal(t, "2024-03-03", first.End)
	assert.True(t, first.AllDay)
	assert.Equal(t, "#10b981", first.Color)

	second := events[1]
	assert.Equal(t, "bob@example.com - SICK", second.Title)
	assert.Equal(t, "bob@example.com", second.UserName)
	assert.Equal(t, "2024-03-12", second.End)
	assert.Equal(t, "#f59e0b", second.Color)
}

func TestBuildCalendarEvents_Empty(t *testing.T) {
	events := leave.BuildCalendarEvents(nil, 2024, 1)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

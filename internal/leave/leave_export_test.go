package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestBuildLeaveWorkbook(t *testing.T) {
	comments := "ok"
	rows := []LeaveResponse{
		{
			ID: 4, Type: TypeCasual, FromDate: "2024-03-04", ToDate: "2024-03-05", Days: 2,
			Status: StatusApproved, Reason: "family", Comments: &comments, CreatedAt: "2024-03-01T08:00:00Z",
			User: &LeaveUserResponse{Name: "Alice", Email: "alice@example.com"},
		},
		{ID: 5, Type: TypeSick, FromDate: "2024-03-06", ToDate: "2024-03-06", Days: 0.5, HalfDay: true, Status: StatusPending},
	}

	buf, err := buildLeaveWorkbook(rows)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{exportSheet}, f.GetSheetList())

	got, err := f.GetRows(exportSheet)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, exportHeaders, got[0])
	assert.Equal(t, "Alice", got[1][1])
	assert.Equal(t, "APPROVED", got[1][9])
	assert.Equal(t, "ok", got[1][11])
	assert.Equal(t, "0.5", got[2][6])
	assert.Equal(t, "Yes", got[2][7])
}

func TestBuildCalendarICS(t *testing.T) {
	events := []CalendarEvent{
		{ID: 1, Title: "Alice - CASUAL", Start: "2024-02-28", End: "2024-03-03", Type: TypeCasual, Status: StatusApproved, Color: "#10b981"},
		{ID: 2, Title: "Bob - SICK", Start: "2024-03-11", End: "2024-03-12", Type: TypeSick, Status: StatusPending, Color: "#f59e0b"},
	}
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	feed, err := buildCalendarICS(events, 2024, 3, now)

	assert.NoError(t, err)
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "METHOD:PUBLISH")
	assert.Contains(t, feed, "UID:leave-1@attendence-helix")
	assert.Contains(t, feed, "SUMMARY:Alice - CASUAL")
	assert.Contains(t, feed, "20240228")
	assert.Contains(t, feed, "20240303")
	assert.Contains(t, feed, "STATUS:CONFIRMED")
	assert.Contains(t, feed, "STATUS:TENTATIVE")
}

func TestBuildCalendarICS_BadDate(t *testing.T) {
	_, err := buildCalendarICS([]CalendarEvent{{ID: 1, Start: "28/02/2024", End: "2024-03-01"}}, 2024, 3, time.Now())
	assert.Error(t, err)
}

package leave

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leave Requests"

var exportHeaders = []string{
	"ID", "Employee", "Email", "Type", "From", "To", "Days",
	"Half Day", "Emergency", "Status", "Reason", "Comments", "Applied At",
}

func buildLeaveWorkbook(rows []LeaveResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)
	f.SetColWidth(exportSheet, "B", "C", 24)
	f.SetColWidth(exportSheet, "K", "L", 36)

	for i, r := range rows {
		row := i + 2
		name, email := "", ""
		if r.User != nil {
			name, email = r.User.Name, r.User.Email
		}
		comments := ""
		if r.Comments != nil {
			comments = *r.Comments
		}
		values := []any{
			r.ID, name, email, r.Type, r.FromDate, r.ToDate, r.Days,
			yesNo(r.HalfDay), yesNo(r.Emergency), r.Status, r.Reason, comments, r.CreatedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func buildCalendarICS(events []CalendarEvent, year, month int, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Attendence Helix//Leave Calendar//EN")
	cal.SetXWRCalName(fmt.Sprintf("Leave %04d-%02d", year, month))

	for _, e := range events {
		start, err := time.Parse(dateLayout, e.Start)
		if err != nil {
			return "", err
		}
		end, err := time.Parse(dateLayout, e.End)
		if err != nil {
			return "", err
		}

		vevent := cal.AddEvent(fmt.Sprintf("leave-%d@attendence-helix", e.ID))
		vevent.SetDtStampTime(now)
		vevent.SetAllDayStartAt(start)
		vevent.SetAllDayEndAt(end)
		vevent.SetSummary(e.Title)
		vevent.SetDescription(fmt.Sprintf("%s leave, status %s", e.Type, e.Status))
		vevent.SetProperty(ics.ComponentPropertyCategories, e.Type)
		vevent.SetProperty(ics.ComponentPropertyColor, e.Color)
		switch e.Status {
		case StatusApproved:
			vevent.SetStatus(ics.ObjectStatusConfirmed)
		case StatusRejected, StatusCancelled:
			vevent.SetStatus(ics.ObjectStatusCancelled)
		default:
			vevent.SetStatus(ics.ObjectStatusTentative)
		}
	}

	return cal.Serialize(), nil
}

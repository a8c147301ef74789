package payslip

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Payslips"

var exportHeaders = []string{
	"ID", "Employee", "Email", "Month", "Year",
	"Gross Pay", "Total Deductions", "Net Pay", "Status", "Generated At",
}

func buildPayslipWorkbook(rows []PayslipResponse) (*bytes.Buffer, error) {
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
	moneyFmt := "#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle)
	f.SetColWidth(exportSheet, "B", "C", 24)
	f.SetColWidth(exportSheet, "F", "H", 16)

	for i, r := range rows {
		name, email := "", ""
		if r.User != nil {
			name, email = r.User.Name, r.User.Email
		}
		values := []interface{}{
			r.ID, name, email, r.MonthName, r.Year,
			r.GrossPay.InexactFloat64(), r.TotalDeduct.InexactFloat64(), r.NetPay.InexactFloat64(),
			r.Status, r.CreatedAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, err
		}
	}
	if len(rows) > 0 {
		from, _ := excelize.CoordinatesToCellName(6, 2)
		to, _ := excelize.CoordinatesToCellName(8, len(rows)+1)
		f.SetCellStyle(exportSheet, from, to, moneyStyle)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

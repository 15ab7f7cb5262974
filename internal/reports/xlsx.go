package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lecturer-claims/internal/money"
)

const sheetName = "Approved Claims"

// WriteXLSX renders the approved-claims report as a spreadsheet.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []string{"Lecturer", "Hours Worked", "Hourly Rate", "Final Payment"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, r := range rows {
		line := i + 2
		values := []string{
			r.LecturerName,
			r.HoursWorked.String(),
			money.Format(r.HourlyRate),
			money.Format(r.FinalPayment),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, line)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	totalLine := len(rows) + 2
	if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalLine), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalLine), money.Format(Total(rows))); err != nil {
		return err
	}

	return f.Write(w)
}

package reports

import (
	"io"

	"github.com/go-pdf/fpdf"

	"lecturer-claims/internal/money"
)

// WritePDF renders the approved-claims report as a simple table.
func WritePDF(w io.Writer, rows []Row) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Approved Claims Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{70, 30, 35, 40}
	headers := []string{"Lecturer", "Hours", "Rate", "Final Payment"}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(colWidths[0], 8, r.LecturerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, r.HoursWorked.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, money.Format(r.HourlyRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, money.Format(r.FinalPayment), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1]+colWidths[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, money.Format(Total(rows)), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}

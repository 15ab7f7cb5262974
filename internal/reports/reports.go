// Package reports projects approved claims into a flat row set and
// renders it for HR as PDF or XLSX.
package reports

import (
	"github.com/shopspring/decimal"

	"lecturer-claims/internal/claims"
	"lecturer-claims/internal/models"
)

// Row is the record the binary formatters consume.
type Row struct {
	LecturerName string
	HoursWorked  decimal.Decimal
	HourlyRate   decimal.Decimal
	FinalPayment decimal.Decimal
}

// Rows materializes one row per approved claim, in creation order.
// Payment is recomputed from hours and rate on every call so the report
// can never drift from the submission-time figures.
func Rows(repo claims.Repository) ([]Row, error) {
	approved, err := repo.ListByStatus(models.StatusApproved)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(approved))
	for i := range approved {
		c := &approved[i]
		rows = append(rows, Row{
			LecturerName: c.LecturerName,
			HoursWorked:  c.HoursWorked,
			HourlyRate:   c.HourlyRate,
			FinalPayment: c.FinalPayment(),
		})
	}
	return rows, nil
}

// Total sums the final payments of a row set.
func Total(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.FinalPayment)
	}
	return total
}

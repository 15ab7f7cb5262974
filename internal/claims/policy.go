package claims

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"lecturer-claims/internal/models"
)

// auto-decline thresholds, same units and precision as the payment figures
var (
	MaxHourlyRate  = decimal.NewFromInt(200)
	MaxHoursWorked = decimal.NewFromInt(120)
)

// ValidateSubmission checks field shape only; threshold policy is
// DecideInitialStatus's job.
func ValidateSubmission(sub Submission) error {
	if strings.TrimSpace(sub.LecturerName) == "" {
		return &ValidationError{Field: "lecturer name", Reason: "must not be empty"}
	}
	if sub.HoursWorked.IsNegative() {
		return &ValidationError{Field: "hours worked", Reason: "must not be negative"}
	}
	if sub.HourlyRate.IsNegative() {
		return &ValidationError{Field: "hourly rate", Reason: "must not be negative"}
	}
	if strings.TrimSpace(sub.DocumentPath) == "" {
		return &ValidationError{Field: "supporting document", Reason: "is required"}
	}
	return nil
}

// DecideInitialStatus applies the auto-decline rule at submission time.
// The reason is non-empty exactly when the claim is declined.
func DecideInitialStatus(hoursWorked, hourlyRate decimal.Decimal) (models.ClaimStatus, string) {
	var reasons []string
	if hourlyRate.GreaterThan(MaxHourlyRate) {
		reasons = append(reasons, fmt.Sprintf("hourly rate %s exceeds the maximum of %s",
			hourlyRate.String(), MaxHourlyRate.String()))
	}
	if hoursWorked.GreaterThan(MaxHoursWorked) {
		reasons = append(reasons, fmt.Sprintf("hours worked %s exceeds the maximum of %s",
			hoursWorked.String(), MaxHoursWorked.String()))
	}
	if len(reasons) > 0 {
		return models.StatusDeclined, strings.Join(reasons, "; ")
	}
	return models.StatusPending, ""
}

// canReview gates Approve/Reject. Only Pending claims are reviewable:
// repeating a review or touching a Declined claim is an invalid
// transition, never a silent no-op.
func canReview(current models.ClaimStatus) error {
	if current != models.StatusPending {
		return ErrInvalidTransition
	}
	return nil
}

package money

import "github.com/shopspring/decimal"

// Payment is the single place where a claim total is computed.
// hours * rate, exact decimal arithmetic, no rounding pass.
func Payment(hoursWorked, hourlyRate decimal.Decimal) decimal.Decimal {
	return hoursWorked.Mul(hourlyRate)
}

// Format renders an amount for templates and report cells.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

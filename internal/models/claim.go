package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"lecturer-claims/internal/money"
)

type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
	StatusDeclined ClaimStatus = "declined"
)

// Claim is a lecturer's request for payment for hours worked at a rate.
type Claim struct {
	gorm.Model
	LecturerName string          `gorm:"size:255;not null"`
	HoursWorked  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	HourlyRate   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Notes        string          `gorm:"type:text"`
	DocumentPath string          `gorm:"size:512;not null"`

	// owning submitter, immutable after creation
	UserID uint `gorm:"not null;index"`
	User   User

	Status ClaimStatus `gorm:"type:varchar(20);not null"`

	// non-empty only when the claim was auto-declined at submission
	DeclineReason string `gorm:"type:text"`
}

// FinalPayment is always recomputed from hours and rate, never stored.
// Value receiver so templates can call it on ranged claims.
func (c Claim) FinalPayment() decimal.Decimal {
	return money.Payment(c.HoursWorked, c.HourlyRate)
}

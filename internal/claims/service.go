package claims

import (
	"github.com/shopspring/decimal"

	"lecturer-claims/internal/models"
)

// Repository is the persistence surface the engine needs. The gorm
// implementation lives in internal/database.
type Repository interface {
	Create(claim *models.Claim) error
	FindByID(id uint) (*models.Claim, error)
	ListByUser(userID uint) ([]models.Claim, error)
	ListByStatus(status models.ClaimStatus) ([]models.Claim, error)
	ListAll() ([]models.Claim, error)
	Update(claim *models.Claim) error
	Delete(id uint) error
}

// Caller is the authenticated identity an operation runs as. The engine
// treats it as opaque input from the session layer.
type Caller struct {
	UserID uint
	Roles  []string
}

func (c Caller) Is(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsReviewer reports whether the caller may approve, reject or delete.
func (c Caller) IsReviewer() bool {
	return c.Is(models.RoleCoordinator) || c.Is(models.RoleManager)
}

// IsStaff reports whether the caller may see every claim.
func (c Caller) IsStaff() bool {
	return c.IsReviewer() || c.Is(models.RoleHR)
}

// Submission carries the validated form input for a new claim.
// DocumentPath must already point at a stored supporting document.
type Submission struct {
	LecturerName string
	HoursWorked  decimal.Decimal
	HourlyRate   decimal.Decimal
	Notes        string
	DocumentPath string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates the submission, applies the auto-decline rule and
// persists the claim. The status is assigned here, never defaulted later.
func (s *Service) Submit(caller Caller, sub Submission) (*models.Claim, error) {
	if !caller.Is(models.RoleLecturer) {
		return nil, ErrUnauthorized
	}
	if err := ValidateSubmission(sub); err != nil {
		return nil, err
	}

	status, reason := DecideInitialStatus(sub.HoursWorked, sub.HourlyRate)

	claim := &models.Claim{
		LecturerName:  sub.LecturerName,
		HoursWorked:   sub.HoursWorked,
		HourlyRate:    sub.HourlyRate,
		Notes:         sub.Notes,
		DocumentPath:  sub.DocumentPath,
		UserID:        caller.UserID,
		Status:        status,
		DeclineReason: reason,
	}

	if err := s.repo.Create(claim); err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *Service) Approve(caller Caller, id uint) (*models.Claim, error) {
	return s.review(caller, id, models.StatusApproved)
}

func (s *Service) Reject(caller Caller, id uint) (*models.Claim, error) {
	return s.review(caller, id, models.StatusRejected)
}

func (s *Service) review(caller Caller, id uint, next models.ClaimStatus) (*models.Claim, error) {
	if !caller.IsReviewer() {
		return nil, ErrUnauthorized
	}

	claim, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := canReview(claim.Status); err != nil {
		return nil, err
	}

	claim.Status = next
	if err := s.repo.Update(claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// Delete removes a claim in any state. Reviewer-only.
func (s *Service) Delete(caller Caller, id uint) error {
	if !caller.IsReviewer() {
		return ErrUnauthorized
	}
	return s.repo.Delete(id)
}

// ClaimsByUser is the lecturer's own view.
func (s *Service) ClaimsByUser(caller Caller) ([]models.Claim, error) {
	return s.repo.ListByUser(caller.UserID)
}

// Pending is the reviewer queue.
func (s *Service) Pending(caller Caller) ([]models.Claim, error) {
	if !caller.IsReviewer() {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByStatus(models.StatusPending)
}

// All is the privileged audit/track view.
func (s *Service) All(caller Caller) ([]models.Claim, error) {
	if !caller.IsStaff() {
		return nil, ErrUnauthorized
	}
	return s.repo.ListAll()
}

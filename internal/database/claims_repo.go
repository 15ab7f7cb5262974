package database

import (
	"errors"

	"gorm.io/gorm"

	"lecturer-claims/internal/claims"
	"lecturer-claims/internal/models"
)

// ClaimRepository is the gorm-backed claims.Repository. It translates
// gorm's record-not-found into the typed claims error so callers never
// see driver errors.
type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(claim *models.Claim) error {
	return r.db.Create(claim).Error
}

func (r *ClaimRepository) FindByID(id uint) (*models.Claim, error) {
	var claim models.Claim
	if err := r.db.First(&claim, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claims.ErrNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepository) ListByUser(userID uint) ([]models.Claim, error) {
	var list []models.Claim
	err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *ClaimRepository) ListByStatus(status models.ClaimStatus) ([]models.Claim, error) {
	var list []models.Claim
	err := r.db.Where("status = ?", status).Order("id asc").Find(&list).Error
	return list, err
}

func (r *ClaimRepository) ListAll() ([]models.Claim, error) {
	var list []models.Claim
	err := r.db.Order("id asc").Find(&list).Error
	return list, err
}

// Update requires the claim to exist already; creating through Update
// would bypass the policy engine's status decision.
func (r *ClaimRepository) Update(claim *models.Claim) error {
	var existing models.Claim
	if err := r.db.First(&existing, claim.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return claims.ErrNotFound
		}
		return err
	}
	return r.db.Save(claim).Error
}

func (r *ClaimRepository) Delete(id uint) error {
	res := r.db.Unscoped().Delete(&models.Claim{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return claims.ErrNotFound
	}
	return nil
}

package database

import "lecturer-claims/internal/models"

// helper for writing to the audit trail
func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}

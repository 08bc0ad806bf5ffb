package sql

import (
	"time"

	"admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsertAudit records a mutating operator action. Failures are returned to the
// caller but must never block the proxied operation itself.
func InsertAudit(db *gorm.DB, actorEmail string, action string, targetID string, detail string) error {
	record := models.AuditRecord{
		ID:         uuid.New(),
		ActorEmail: actorEmail,
		Action:     action,
		TargetID:   targetID,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	return db.Create(&record).Error
}

func ListAudit(db *gorm.DB, page int, limit int) ([]models.AuditRecord, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	var records []models.AuditRecord
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

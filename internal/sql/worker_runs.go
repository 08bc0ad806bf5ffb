package sql

import (
	"time"

	"admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func StartWorkerRun(db *gorm.DB, name string) (uuid.UUID, error) {
	record := models.WorkerRun{
		ID:        uuid.New(),
		Name:      name,
		Status:    models.WorkerRunRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := db.Create(&record).Error; err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func ListWorkerRuns(db *gorm.DB, limit int) ([]models.WorkerRun, error) {
	if limit < 1 {
		limit = 50
	}

	var records []models.WorkerRun
	err := db.Order("started_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func FinishWorkerRun(db *gorm.DB, id uuid.UUID, status string) error {
	now := time.Now().UTC()
	return db.Model(&models.WorkerRun{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "finished_at": &now}).Error
}

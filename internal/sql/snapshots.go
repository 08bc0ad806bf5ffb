package sql

import (
	"encoding/json"
	"time"

	"admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsertReportSnapshot archives a generated report so growth can be inspected
// beyond the live snapshot.
func InsertReportSnapshot(db *gorm.DB, snapshot models.ReportSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	record := models.ReportSnapshotRecord{
		ID:             uuid.New(),
		TotalUsers:     snapshot.Summary.TotalUsers,
		TotalAds:       snapshot.Summary.TotalAds,
		ActiveCities:   snapshot.Summary.ActiveCities,
		ConversionRate: snapshot.Summary.ConversionRate,
		Payload:        payload,
		CreatedAt:      time.Now().UTC(),
	}
	return db.Create(&record).Error
}

func ListReportSnapshots(db *gorm.DB, limit int) ([]models.ReportSnapshotRecord, error) {
	if limit < 1 {
		limit = 30
	}

	var records []models.ReportSnapshotRecord
	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

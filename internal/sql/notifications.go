package sql

import (
	"time"

	"admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const notificationListLimit = 50

func InsertNotification(db *gorm.DB, title string, body string, kind string) error {
	record := models.NotificationRecord{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	return db.Create(&record).Error
}

// ListNotifications returns the most recent event-generated notifications.
func ListNotifications(db *gorm.DB) ([]models.NotificationRecord, error) {
	var records []models.NotificationRecord
	err := db.Order("created_at DESC").
		Limit(notificationListLimit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Persisted records. Everything else in this service is transient and replaced
// wholesale on each refresh.

// AuditRecord logs every mutating operator action proxied to the backend.
type AuditRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action"`
	TargetID   string    `json:"target_id"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

// WorkerRun tracks one refresh cycle of a poll worker.
type WorkerRun struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
}

const (
	WorkerRunRunning   = "running"
	WorkerRunCompleted = "completed"
	WorkerRunFailed    = "failed"
)

// ReportSnapshotRecord keeps report history so growth can be inspected beyond
// the current in-memory snapshot.
type ReportSnapshotRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TotalUsers     int       `json:"total_users"`
	TotalAds       int       `json:"total_ads"`
	ActiveCities   int       `json:"active_cities"`
	ConversionRate float64   `json:"conversion_rate"`
	Payload        []byte    `gorm:"type:jsonb" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationRecord is an event-generated notification shown on the
// notifications page alongside the fixture entries.
type NotificationRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditListQuery struct {
	Page  int `json:"page"  validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=200"`
}

type AuditPage struct {
	Records []AuditRecord `json:"records"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
}

package workers

import (
	"admin/internal/models"
	"admin/internal/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackRun wraps one refresh cycle in a persisted worker run row. Tracking
// failures are logged but never fail the cycle itself.
func trackRun(db *gorm.DB, name string, fn func() error) error {
	var runID uuid.UUID

	if db != nil {
		var err error
		runID, err = sql.StartWorkerRun(db, name)
		if err != nil {
			zap.L().Warn("Failed to record worker run", zap.String("worker", name), zap.Error(err))
			runID = uuid.Nil
		}
	}

	err := fn()

	if runID != uuid.Nil {
		status := models.WorkerRunCompleted
		if err != nil {
			status = models.WorkerRunFailed
		}
		if trackErr := sql.FinishWorkerRun(db, runID, status); trackErr != nil {
			zap.L().Warn("Failed to finish worker run", zap.String("worker", name), zap.Error(trackErr))
		}
	}

	return err
}

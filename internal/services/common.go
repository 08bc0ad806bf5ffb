package services

import (
	"net/http"

	"admin/internal/helpers"
	"admin/internal/models"
	"admin/internal/sql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// upstreamError maps a failed backend envelope to a gateway error carrying the
// backend's message.
func upstreamError(message string) error {
	if message == "" {
		message = "UPSTREAM_UNAVAILABLE"
	}
	return helpers.NewAPIError(http.StatusBadGateway, message)
}

// audit records a mutating operator action. Audit failures are logged, never
// propagated; the proxied operation already succeeded.
func audit(db *gorm.DB, claims models.SessionClaims, action string, targetID string, detail string) {
	if db == nil {
		return
	}
	if err := sql.InsertAudit(db, claims.Email, action, targetID, detail); err != nil {
		zap.L().Warn("Failed to write audit record",
			zap.String("action", action),
			zap.Error(err))
	}
}

func firstParam(ids []string) (string, error) {
	if len(ids) == 0 || ids[0] == "" {
		return "", helpers.NewAPIError(http.StatusBadRequest, "MISSING_ID")
	}
	return ids[0], nil
}

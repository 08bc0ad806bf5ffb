package services

import (
	"admin/internal/gateway"
	"admin/internal/handlers"
	"admin/internal/models"
	"admin/internal/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SupportService struct {
	DB       *gorm.DB
	Fixtures gateway.IFixtures
}

func (s SupportService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/tickets", handlers.GetOneHandler(s.Tickets))
	r.Get("/notifications", handlers.GetOneHandler(s.Notifications))

	return r
}

func (s SupportService) Tickets(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]models.TicketRecord, error) {
	env := s.Fixtures.ListTickets()
	if !env.Success {
		return nil, upstreamError(env.Message)
	}
	return env.Data, nil
}

// Notifications merges the fixture entries with event-generated records, most
// recent first within each source.
func (s SupportService) Notifications(
	logger *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]models.NotificationView, error) {
	env := s.Fixtures.ListNotifications()
	if !env.Success {
		return nil, upstreamError(env.Message)
	}

	views := make([]models.NotificationView, 0, len(env.Data))

	if s.DB != nil {
		records, err := sql.ListNotifications(s.DB)
		if err != nil {
			logger.Warn("Failed to load stored notifications", zap.Error(err))
		}
		for _, record := range records {
			views = append(views, models.NotificationView{
				ID:        record.ID.String(),
				Title:     record.Title,
				Body:      record.Body,
				Kind:      record.Kind,
				CreatedAt: record.CreatedAt.Format("2006-01-02"),
			})
		}
	}

	views = append(views, env.Data...)

	return views, nil
}

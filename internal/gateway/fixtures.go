package gateway

import (
	"embed"
	"encoding/json"
	"fmt"

	"admin/internal/models"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// FixtureStore serves the domains that are not backend-integrated yet
// (payments, packages, tickets, notifications, locations, dashboard charts)
// from embedded documents, wrapped in the same envelope as live responses.
type FixtureStore struct {
	payments      []models.UpstreamPayment
	packages      []models.PackageRecord
	tickets       []models.TicketRecord
	locations     []models.LocationRecord
	notifications []models.NotificationView
	charts        models.DashboardCharts
}

var _ IFixtures = (*FixtureStore)(nil)

func NewFixtureStore() (*FixtureStore, error) {
	store := &FixtureStore{}

	loaders := map[string]any{
		"fixtures/payments.json":      &store.payments,
		"fixtures/packages.json":      &store.packages,
		"fixtures/tickets.json":       &store.tickets,
		"fixtures/locations.json":     &store.locations,
		"fixtures/notifications.json": &store.notifications,
		"fixtures/charts.json":        &store.charts,
	}

	for name, target := range loaders {
		raw, err := fixtureFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", name, err)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, fmt.Errorf("failed to parse fixture %s: %w", name, err)
		}
	}

	return store, nil
}

func ok[T any](data T) models.Envelope[T] {
	return models.Envelope[T]{Success: true, Data: data}
}

func (s *FixtureStore) ListPayments() models.Envelope[[]models.UpstreamPayment] {
	return ok(s.payments)
}

func (s *FixtureStore) ListPackages() models.Envelope[[]models.PackageRecord] {
	return ok(s.packages)
}

func (s *FixtureStore) ListTickets() models.Envelope[[]models.TicketRecord] {
	return ok(s.tickets)
}

func (s *FixtureStore) ListLocations() models.Envelope[[]models.LocationRecord] {
	return ok(s.locations)
}

func (s *FixtureStore) ListNotifications() models.Envelope[[]models.NotificationView] {
	return ok(s.notifications)
}

func (s *FixtureStore) DashboardCharts() models.Envelope[models.DashboardCharts] {
	return ok(s.charts)
}

package gateway

import (
	"context"

	"admin/internal/models"
)

// IGateway is the outbound interface to the marketplace backend. Every method
// resolves to an envelope: transport and server failures surface as
// Success=false with a human-readable message, never as a Go error, so callers
// only ever branch on the Success flag.
type IGateway interface {
	ListUsers(ctx context.Context, query models.UserListQuery) models.Envelope[models.UsersPage]
	GetUser(ctx context.Context, id string) models.Envelope[models.UserPage]
	ListOrders(ctx context.Context, query models.OrderListQuery) models.Envelope[models.OrdersPage]
	ListProducts(ctx context.Context, query models.ProductListQuery) models.Envelope[models.ProductsPage]
	ListCategories(ctx context.Context) models.Envelope[models.CategoriesPage]
	CreateCategory(ctx context.Context, body models.CategoryCreateBody) models.Envelope[models.Empty]
	RegisterEmployee(ctx context.Context, body models.EmployeeCreateBody) models.Envelope[models.Empty]
	UpdateUserStatus(ctx context.Context, id string, body models.UserStatusBody) models.Envelope[models.Empty]
	UpdateUserVerification(ctx context.Context, id string, body models.UserVerificationBody) models.Envelope[models.Empty]
	UpdateProductStatus(ctx context.Context, id string, body models.ProductStatusBody) models.Envelope[models.Empty]
	DashboardStats(ctx context.Context) models.Envelope[models.DashboardStats]
}

// IFixtures serves the domains the backend does not expose yet. Data flows
// through the same envelope shape as live backend responses so downstream
// code needs no special-casing.
type IFixtures interface {
	ListPayments() models.Envelope[[]models.UpstreamPayment]
	ListPackages() models.Envelope[[]models.PackageRecord]
	ListTickets() models.Envelope[[]models.TicketRecord]
	ListLocations() models.Envelope[[]models.LocationRecord]
	ListNotifications() models.Envelope[[]models.NotificationView]
	DashboardCharts() models.Envelope[models.DashboardCharts]
}

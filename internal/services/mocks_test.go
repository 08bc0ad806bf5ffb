package services

import (
	"context"
	"database/sql"
	"testing"

	"admin/internal/cache"
	"admin/internal/gateway"
	"admin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// --- Mock gateway ---

type MockGateway struct {
	UsersEnv      models.Envelope[models.UsersPage]
	UserEnv       models.Envelope[models.UserPage]
	ProductsEnv   models.Envelope[models.ProductsPage]
	CategoriesEnv models.Envelope[models.CategoriesPage]
	OrdersEnv     models.Envelope[models.OrdersPage]
	MutationEnv   models.Envelope[models.Empty]
	StatsEnv      models.Envelope[models.DashboardStats]

	LastUserID    string
	LastProductID string
}

var _ gateway.IGateway = (*MockGateway)(nil)

func (m *MockGateway) ListUsers(_ context.Context, _ models.UserListQuery) models.Envelope[models.UsersPage] {
	return m.UsersEnv
}

func (m *MockGateway) GetUser(_ context.Context, id string) models.Envelope[models.UserPage] {
	m.LastUserID = id
	return m.UserEnv
}

func (m *MockGateway) ListOrders(_ context.Context, _ models.OrderListQuery) models.Envelope[models.OrdersPage] {
	return m.OrdersEnv
}

func (m *MockGateway) ListProducts(_ context.Context, _ models.ProductListQuery) models.Envelope[models.ProductsPage] {
	return m.ProductsEnv
}

func (m *MockGateway) ListCategories(_ context.Context) models.Envelope[models.CategoriesPage] {
	return m.CategoriesEnv
}

func (m *MockGateway) CreateCategory(_ context.Context, _ models.CategoryCreateBody) models.Envelope[models.Empty] {
	return m.MutationEnv
}

func (m *MockGateway) RegisterEmployee(_ context.Context, _ models.EmployeeCreateBody) models.Envelope[models.Empty] {
	return m.MutationEnv
}

func (m *MockGateway) UpdateUserStatus(_ context.Context, id string, _ models.UserStatusBody) models.Envelope[models.Empty] {
	m.LastUserID = id
	return m.MutationEnv
}

func (m *MockGateway) UpdateUserVerification(_ context.Context, id string, _ models.UserVerificationBody) models.Envelope[models.Empty] {
	m.LastUserID = id
	return m.MutationEnv
}

func (m *MockGateway) UpdateProductStatus(_ context.Context, id string, _ models.ProductStatusBody) models.Envelope[models.Empty] {
	m.LastProductID = id
	return m.MutationEnv
}

func (m *MockGateway) DashboardStats(_ context.Context) models.Envelope[models.DashboardStats] {
	return m.StatsEnv
}

// --- Mock cache ---

type MockCache struct {
	snapshots map[string][]byte
}

var _ cache.ICache = (*MockCache)(nil)

func (m *MockCache) RegisterPlatform(_ string) error { return nil }
func (m *MockCache) DeleteInactivePlatform() error   { return nil }
func (m *MockCache) StartIdentityTicker(_ string)    {}
func (m *MockCache) GetRateLimit(_ string, _ int) (int, error) {
	return 0, nil
}
func (m *MockCache) TryAcquireLock(_ string, _ string, _ int) (bool, error) { return true, nil }
func (m *MockCache) RefreshLock(_ string, _ string, _ int) (bool, error)    { return true, nil }

func (m *MockCache) SetSnapshot(resource string, payload []byte) error {
	if m.snapshots == nil {
		m.snapshots = make(map[string][]byte)
	}
	m.snapshots[resource] = payload
	return nil
}

func (m *MockCache) GetSnapshot(resource string) ([]byte, bool, error) {
	payload, ok := m.snapshots[resource]
	return payload, ok, nil
}

func (m *MockCache) Close() error { return nil }

// --- DB helpers ---

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func(db *sql.DB) func() { return func() { _ = db.Close() } }(db))

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func okMutation() models.Envelope[models.Empty] {
	return models.Envelope[models.Empty]{Success: true}
}

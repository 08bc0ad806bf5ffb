package normalize

import (
	"testing"

	"admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFallbacks(t *testing.T) {
	record := User(models.UpstreamUser{ID: "u1"})

	assert.Equal(t, UnknownUser, record.Name)
	assert.Equal(t, UnknownLocation, record.Location)
	assert.Equal(t, MissingDate, record.Registered)
	assert.Equal(t, "Active", record.Status)
}

func TestUserStatusLabels(t *testing.T) {
	assert.Equal(t, "Active", User(models.UpstreamUser{Status: "active"}).Status)
	assert.Equal(t, "Pending", User(models.UpstreamUser{Status: "pending"}).Status)
	assert.Equal(t, "Suspended", User(models.UpstreamUser{Status: "suspended"}).Status)
	assert.Equal(t, "Active", User(models.UpstreamUser{Status: "banned"}).Status)
}

func TestUserNameRequiresBothParts(t *testing.T) {
	assert.Equal(t, "Asha Rao", User(models.UpstreamUser{FirstName: "Asha", LastName: "Rao"}).Name)
	assert.Equal(t, UnknownUser, User(models.UpstreamUser{FirstName: "Asha"}).Name)
	assert.Equal(t, UnknownUser, User(models.UpstreamUser{LastName: "Rao"}).Name)
}

func TestUserDateAndCount(t *testing.T) {
	record := User(models.UpstreamUser{
		CreatedAt: "2024-03-05T08:00:00.000Z",
		Count:     models.UpstreamCount{Products: 7},
	})

	assert.Equal(t, "2024-03-05", record.Registered)
	assert.Equal(t, 7, record.AdsPosted)
}

func TestProductFallbacks(t *testing.T) {
	record := Product(models.UpstreamProduct{ID: "p1"})

	assert.Equal(t, UnknownLocation, record.Category)
	assert.Equal(t, UnknownLocation, record.Location)
	assert.Equal(t, UnknownUser, record.Seller.Name)
	assert.Equal(t, MissingPrice, record.Price)
	assert.Zero(t, record.PriceAmount)
	assert.Equal(t, AdStatusInactive, record.Status)
	assert.Empty(t, record.ImageURL)
}

func TestProductFullRecord(t *testing.T) {
	record := Product(models.UpstreamProduct{
		ID:         "p2",
		Name:       "Road Bike",
		Price:      1500,
		IsActive:   true,
		IsFeatured: true,
		ViewCount:  42,
		Flags:      1,
		CreatedAt:  "2024-04-01T12:00:00Z",
		CategoryID: "c9",
		Category:   &models.UpstreamCategoryRef{Name: "Bikes"},
		Seller:     &models.UpstreamSeller{FirstName: "Ravi", LastName: "Kumar", Location: "Pune, MH"},
		Images:     []models.UpstreamImage{{URL: "https://img/1.jpg"}, {URL: "https://img/2.jpg"}},
	})

	assert.Equal(t, "Bikes", record.Category)
	assert.Equal(t, "Ravi Kumar", record.Seller.Name)
	assert.Equal(t, "Pune, MH", record.Location)
	assert.Equal(t, "₹1500", record.Price)
	assert.InDelta(t, 1500.0, record.PriceAmount, 0.001)
	assert.Equal(t, AdStatusActive, record.Status)
	assert.True(t, record.IsPaid)
	assert.Equal(t, 42, record.Engagement)
	assert.Equal(t, "https://img/1.jpg", record.ImageURL)
	assert.Equal(t, "2024-04-01", record.StartDate)
}

func TestDisplayPriceFormats(t *testing.T) {
	assert.Equal(t, MissingPrice, displayPrice(0))
	assert.Equal(t, "₹250", displayPrice(250))
	assert.Equal(t, "₹99.50", displayPrice(99.5))
}

func TestCategoryFlattensOneLevel(t *testing.T) {
	record := Category(models.UpstreamCategory{
		ID:    "c1",
		Name:  "Electronics",
		Count: models.UpstreamCount{Products: 12},
		Children: []models.UpstreamCategory{
			{ID: "c2", Name: "Phones", Children: []models.UpstreamCategory{{ID: "c3", Name: "Ignored"}}},
		},
	})

	assert.Equal(t, "Folder", record.Icon)
	assert.Equal(t, 12, record.AdCount)
	require.Len(t, record.Subcategories, 1)
	assert.Equal(t, "Phones", record.Subcategories[0].Name)
}

func TestPaymentNormalization(t *testing.T) {
	record := Payment(models.UpstreamPayment{
		ID:            "pay1",
		FirstName:     "Maya",
		LastName:      "Singh",
		Email:         "maya@example.com",
		Amount:        499,
		Status:        "completed",
		CreatedAt:     "2024-02-10T09:00:00Z",
		TransactionID: "TXN1234567890ABC",
		Method:        "UPI",
	})

	assert.Equal(t, "Maya Singh", record.User.Name)
	assert.Equal(t, "Completed", record.Status)
	assert.Equal(t, "2024-02-10", record.Date)
	assert.Equal(t, "TXN1234567", record.TransactionID.Short)
	assert.Equal(t, "TXN1234567890ABC", record.TransactionID.Full)
	assert.Equal(t, "₹499", record.AmountDisplay)
}

func TestPaymentFallbacks(t *testing.T) {
	record := Payment(models.UpstreamPayment{ID: "pay2", TransactionID: "short"})

	assert.Equal(t, UnknownUser, record.User.Name)
	assert.Equal(t, "Pending", record.Status)
	assert.Equal(t, MissingDate, record.Date)
	assert.Equal(t, "short", record.TransactionID.Short)
	assert.Equal(t, MissingPrice, record.AmountDisplay)
}

func TestOrderNormalization(t *testing.T) {
	record := Order(models.UpstreamOrder{
		ID:        "ord1",
		Package:   "Premium",
		Amount:    999,
		Status:    "completed",
		CreatedAt: "2024-03-05T12:00:00Z",
		User:      &models.UpstreamBuyer{FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com"},
	})

	assert.Equal(t, "Ravi Kumar", record.User.Name)
	assert.Equal(t, "ravi@example.com", record.User.Email)
	assert.Equal(t, "Completed", record.Status)
	assert.Equal(t, "2024-03-05", record.Date)
	assert.Equal(t, "₹999", record.AmountDisplay)
}

func TestOrderFallbacks(t *testing.T) {
	record := Order(models.UpstreamOrder{ID: "ord2"})

	assert.Equal(t, UnknownUser, record.User.Name)
	assert.Equal(t, "Pending", record.Status)
	assert.Equal(t, MissingDate, record.Date)
	assert.Equal(t, MissingPrice, record.AmountDisplay)
}

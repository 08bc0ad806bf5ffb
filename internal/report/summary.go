package report

import (
	"math"
	"time"

	"admin/internal/models"
)

// Percentage returns round(numerator/denominator*100). A zero denominator
// yields 0, never NaN or infinity.
func Percentage(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}

// Rate is Percentage with one decimal of precision, used for conversion rates.
func Rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return math.Round(float64(numerator)/float64(denominator)*1000) / 10
}

// Summary derives the reports page KPI cards. Active cities counts distinct
// location values; conversion rate is active ads per user.
func Summary(users []models.UserRecord, ads []models.AdRecord) models.ReportSummary {
	cities := make(map[string]bool, len(users))
	for _, u := range users {
		cities[u.Location] = true
	}

	active := 0
	for _, ad := range ads {
		if ad.Status == "Active" {
			active++
		}
	}

	return models.ReportSummary{
		TotalUsers:     len(users),
		TotalAds:       len(ads),
		ActiveCities:   len(cities),
		ConversionRate: Rate(active, len(users)),
	}
}

// PaymentsSummary derives the finance page counters. Monthly revenue sums
// completed payments only.
func PaymentsSummary(payments []models.PaymentRecord) models.PaymentsSummary {
	summary := models.PaymentsSummary{
		TotalTransactions: len(payments),
	}

	for _, payment := range payments {
		switch payment.Status {
		case "Pending":
			summary.PendingPayments++
		case "Failed":
			summary.FailedTransactions++
		case "Completed":
			summary.MonthlyRevenue += payment.Amount
		}
	}

	return summary
}

// Build assembles the full report snapshot from normalized record lists.
func Build(users []models.UserRecord, ads []models.AdRecord, categories []models.CategoryRecord) models.ReportSnapshot {
	return models.ReportSnapshot{
		Summary:     Summary(users, ads),
		UserGrowth:  UserGrowth(users),
		Conversion:  Conversion(users, ads),
		Geographic:  Geographic(users, ads),
		Categories:  CategoryPerformanceList(categories, ads),
		GeneratedAt: time.Now().UTC(),
	}
}

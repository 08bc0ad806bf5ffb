package models

import "time"

// StatusBuckets is the result of a single-pass status count. Records whose
// status is outside the recognized set contribute to Total and Unrecognized
// but to no named bucket.
type StatusBuckets struct {
	Total        int            `json:"total"`
	Counts       map[string]int `json:"counts"`
	Unrecognized int            `json:"unrecognized"`
}

// TimeSeriesPoint is one month bucket in a chronological series.
type TimeSeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type CityCount struct {
	City  string `json:"city"`
	Users int    `json:"users"`
	Ads   int    `json:"ads"`
}

type GeoReport struct {
	TopCitiesByUsers []CityCount `json:"top_cities_by_users"`
	CityPerformance  []CityCount `json:"city_performance"`
}

type CategoryPerformance struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Ads     int     `json:"ads"`
	Revenue float64 `json:"revenue"`
	// Estimated marks a synthetic revenue figure derived from the placeholder
	// unit value rather than real prices.
	Estimated bool `json:"estimated"`
}

type ConversionPoint struct {
	Label     string  `json:"label"`
	Users     int     `json:"users"`
	ActiveAds int     `json:"active_ads"`
	Rate      float64 `json:"rate"`
}

// ReportSummary holds the KPI card values of the reports page. Counts reflect
// the fetched page only, never a server-side total.
type ReportSummary struct {
	TotalUsers     int     `json:"total_users"`
	TotalAds       int     `json:"total_ads"`
	ActiveCities   int     `json:"active_cities"`
	ConversionRate float64 `json:"conversion_rate"`
}

type PaymentsSummary struct {
	TotalTransactions  int     `json:"total_transactions"`
	PendingPayments    int     `json:"pending_payments"`
	FailedTransactions int     `json:"failed_transactions"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
}

type CategoriesSummary struct {
	TotalCategories    int    `json:"total_categories"`
	TotalSubcategories int    `json:"total_subcategories"`
	TotalAds           int    `json:"total_ads"`
	HighestCategory    string `json:"highest_category"`
}

// Snapshots assembled by the poll workers and served by the API.

type UsersView struct {
	Users     []UserRecord  `json:"users"`
	Stats     StatusBuckets `json:"stats"`
	FetchedAt time.Time     `json:"fetched_at"`
}

type AdsView struct {
	Ads       []AdRecord `json:"ads"`
	Total     int        `json:"total"`
	Active    int        `json:"active"`
	Pending   int        `json:"pending"`
	Flagged   int        `json:"flagged"`
	FetchedAt time.Time  `json:"fetched_at"`
}

type CategoriesView struct {
	Categories []CategoryRecord  `json:"categories"`
	Summary    CategoriesSummary `json:"summary"`
	FetchedAt  time.Time         `json:"fetched_at"`
}

type ReportSnapshot struct {
	Summary     ReportSummary         `json:"summary"`
	UserGrowth  []TimeSeriesPoint     `json:"user_growth"`
	Conversion  []ConversionPoint     `json:"conversion"`
	Geographic  GeoReport             `json:"geographic"`
	Categories  []CategoryPerformance `json:"categories"`
	GeneratedAt time.Time             `json:"generated_at"`
}

type DashboardView struct {
	Stats     DashboardStats  `json:"stats"`
	Charts    DashboardCharts `json:"charts"`
	FetchedAt time.Time       `json:"fetched_at"`
}

type FinanceView struct {
	Payments []PaymentRecord `json:"payments"`
	Summary  PaymentsSummary `json:"summary"`
}

type ExportResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	// URL is a time-limited download link; empty when the storage backend
	// cannot produce one.
	URL string `json:"url,omitempty"`
}

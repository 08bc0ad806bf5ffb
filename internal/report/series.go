package report

import (
	"sort"
	"time"

	"admin/internal/models"
)

// parseDay accepts the date formats that survive normalization: a plain
// ISO date or a full RFC 3339 timestamp.
func parseDay(value string) (time.Time, bool) {
	if value == "" || value == "-" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func monthLabel(key int) string {
	t := time.Date(key/12, time.Month(key%12+1), 1, 0, 0, 0, 0, time.UTC)
	return t.Format("Jan 2006")
}

func countByMonth(dates []string) map[int]int {
	counts := make(map[int]int)
	for _, value := range dates {
		day, ok := parseDay(value)
		if !ok {
			continue
		}
		counts[monthKey(day)]++
	}
	return counts
}

func sortedKeys(maps ...map[int]int) []int {
	seen := make(map[int]bool)
	var keys []int
	for _, m := range maps {
		for key := range m {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	sort.Ints(keys)
	return keys
}

// MonthlySeries groups timestamps into month buckets ordered chronologically,
// regardless of input order. Unparseable dates are skipped.
func MonthlySeries(dates []string) []models.TimeSeriesPoint {
	counts := countByMonth(dates)

	series := make([]models.TimeSeriesPoint, 0, len(counts))
	for _, key := range sortedKeys(counts) {
		series = append(series, models.TimeSeriesPoint{Label: monthLabel(key), Count: counts[key]})
	}
	return series
}

// UserGrowth is the month-bucketed registration series of the reports page.
func UserGrowth(users []models.UserRecord) []models.TimeSeriesPoint {
	dates := make([]string, 0, len(users))
	for _, u := range users {
		dates = append(dates, u.Registered)
	}
	return MonthlySeries(dates)
}

// Conversion builds the month-by-month active-ads-per-user ratio over the
// union of both series' months.
func Conversion(users []models.UserRecord, ads []models.AdRecord) []models.ConversionPoint {
	userDates := make([]string, 0, len(users))
	for _, u := range users {
		userDates = append(userDates, u.Registered)
	}

	adDates := make([]string, 0, len(ads))
	for _, ad := range ads {
		if ad.Status != "Active" {
			continue
		}
		adDates = append(adDates, ad.StartDate)
	}

	usersByMonth := countByMonth(userDates)
	adsByMonth := countByMonth(adDates)

	points := make([]models.ConversionPoint, 0)
	for _, key := range sortedKeys(usersByMonth, adsByMonth) {
		monthUsers := usersByMonth[key]
		monthAds := adsByMonth[key]
		points = append(points, models.ConversionPoint{
			Label:     monthLabel(key),
			Users:     monthUsers,
			ActiveAds: monthAds,
			Rate:      Rate(monthAds, monthUsers),
		})
	}
	return points
}

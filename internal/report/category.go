package report

import (
	"sort"

	"admin/internal/models"
)

// PlaceholderRevenueUnit is the synthetic per-ad revenue used when no product
// in a category carries a price. Figures derived from it are marked Estimated
// so they can never be mistaken for real sums.
const PlaceholderRevenueUnit = 1000

// CategoryPerformanceList computes ads-per-category and revenue-per-category,
// sorted descending by ad count with stable ties.
func CategoryPerformanceList(categories []models.CategoryRecord, ads []models.AdRecord) []models.CategoryPerformance {
	adsByCategory := make(map[string][]models.AdRecord)
	for _, ad := range ads {
		adsByCategory[ad.CategoryID] = append(adsByCategory[ad.CategoryID], ad)
	}

	performance := make([]models.CategoryPerformance, 0, len(categories))
	for _, category := range categories {
		catAds := adsByCategory[category.ID]

		var revenue float64
		hasPrice := false
		for _, ad := range catAds {
			if ad.PriceAmount > 0 {
				hasPrice = true
				revenue += ad.PriceAmount
			}
		}

		estimated := false
		if !hasPrice {
			revenue = float64(len(catAds) * PlaceholderRevenueUnit)
			estimated = len(catAds) > 0
		}

		performance = append(performance, models.CategoryPerformance{
			ID:        category.ID,
			Name:      category.Name,
			Ads:       len(catAds),
			Revenue:   revenue,
			Estimated: estimated,
		})
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].Ads > performance[j].Ads
	})

	return performance
}

// CategorySummary derives the categories page counters.
func CategorySummary(categories []models.CategoryRecord) models.CategoriesSummary {
	summary := models.CategoriesSummary{
		TotalCategories: len(categories),
	}

	bestCount := -1
	for _, category := range categories {
		summary.TotalSubcategories += len(category.Subcategories)
		summary.TotalAds += category.AdCount
		if category.AdCount > bestCount {
			bestCount = category.AdCount
			summary.HighestCategory = category.Name
		}
	}

	return summary
}

package report

import (
	"testing"

	"admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPerformanceRealRevenue(t *testing.T) {
	categories := []models.CategoryRecord{{ID: "c1", Name: "Cars"}}
	ads := []models.AdRecord{
		{CategoryID: "c1", PriceAmount: 100},
		{CategoryID: "c1", PriceAmount: 200},
	}

	performance := CategoryPerformanceList(categories, ads)

	require.Len(t, performance, 1)
	assert.Equal(t, 2, performance[0].Ads)
	assert.InDelta(t, 300.0, performance[0].Revenue, 0.001)
	assert.False(t, performance[0].Estimated)
}

func TestCategoryPerformancePlaceholderRevenue(t *testing.T) {
	categories := []models.CategoryRecord{{ID: "c1", Name: "Freebies"}}
	ads := []models.AdRecord{
		{CategoryID: "c1", PriceAmount: 0},
		{CategoryID: "c1", PriceAmount: 0},
	}

	performance := CategoryPerformanceList(categories, ads)

	require.Len(t, performance, 1)
	assert.InDelta(t, float64(2*PlaceholderRevenueUnit), performance[0].Revenue, 0.001)
	assert.True(t, performance[0].Estimated)
}

func TestCategoryPerformanceEmptyCategoryNotEstimated(t *testing.T) {
	categories := []models.CategoryRecord{{ID: "c1", Name: "Empty"}}

	performance := CategoryPerformanceList(categories, nil)

	require.Len(t, performance, 1)
	assert.Zero(t, performance[0].Revenue)
	assert.False(t, performance[0].Estimated)
}

func TestCategoryPerformanceSortedByAdCount(t *testing.T) {
	categories := []models.CategoryRecord{
		{ID: "small", Name: "Small"},
		{ID: "big", Name: "Big"},
	}
	ads := []models.AdRecord{
		{CategoryID: "big", PriceAmount: 10},
		{CategoryID: "big", PriceAmount: 10},
		{CategoryID: "small", PriceAmount: 10},
	}

	performance := CategoryPerformanceList(categories, ads)

	require.Len(t, performance, 2)
	assert.Equal(t, "Big", performance[0].Name)
	assert.Equal(t, "Small", performance[1].Name)
}

func TestCategorySummary(t *testing.T) {
	categories := []models.CategoryRecord{
		{Name: "Cars", AdCount: 5, Subcategories: []models.SubcategoryRecord{{ID: "s1"}, {ID: "s2"}}},
		{Name: "Bikes", AdCount: 8},
		{Name: "Boats", AdCount: 8},
	}

	summary := CategorySummary(categories)

	assert.Equal(t, 3, summary.TotalCategories)
	assert.Equal(t, 2, summary.TotalSubcategories)
	assert.Equal(t, 21, summary.TotalAds)
	// First category reaching the max count wins ties.
	assert.Equal(t, "Bikes", summary.HighestCategory)
}

func TestCategorySummaryEmpty(t *testing.T) {
	summary := CategorySummary(nil)

	assert.Zero(t, summary.TotalCategories)
	assert.Empty(t, summary.HighestCategory)
}

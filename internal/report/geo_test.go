package report

import (
	"fmt"
	"testing"

	"admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityExtraction(t *testing.T) {
	assert.Equal(t, "Mumbai", City("Mumbai, Maharashtra"))
	assert.Equal(t, "Delhi", City("Delhi"))
	assert.Equal(t, "Pune", City("  Pune , MH"))
	assert.Equal(t, "", City(""))
	assert.Equal(t, "", City("Unknown"))
}

func TestGeographicTopCitiesLimit(t *testing.T) {
	var users []models.UserRecord
	for i := 0; i < 8; i++ {
		city := fmt.Sprintf("City%d", i)
		// City0 gets the most users, City7 the fewest.
		for j := 0; j < 9-i; j++ {
			users = append(users, models.UserRecord{Location: city + ", State"})
		}
	}

	geo := Geographic(users, nil)

	require.Len(t, geo.TopCitiesByUsers, TopCitiesLimit)
	assert.Equal(t, "City0", geo.TopCitiesByUsers[0].City)
	assert.Equal(t, 9, geo.TopCitiesByUsers[0].Users)
	assert.Equal(t, "City5", geo.TopCitiesByUsers[5].City)
}

func TestGeographicSkipsUnknownLocations(t *testing.T) {
	users := []models.UserRecord{
		{Location: "Unknown"},
		{Location: ""},
		{Location: "Jaipur, RJ"},
	}

	geo := Geographic(users, nil)

	require.Len(t, geo.TopCitiesByUsers, 1)
	assert.Equal(t, "Jaipur", geo.TopCitiesByUsers[0].City)
}

func TestGeographicCityPerformanceCarriesUserCounts(t *testing.T) {
	users := []models.UserRecord{
		{Location: "Mumbai, MH"},
		{Location: "Mumbai, MH"},
	}
	ads := []models.AdRecord{
		{Location: "Mumbai, MH"},
		{Location: "Chennai, TN"},
	}

	geo := Geographic(users, ads)

	require.Len(t, geo.CityPerformance, 2)
	for _, city := range geo.CityPerformance {
		switch city.City {
		case "Mumbai":
			assert.Equal(t, 2, city.Users)
			assert.Equal(t, 1, city.Ads)
		case "Chennai":
			assert.Equal(t, 0, city.Users)
			assert.Equal(t, 1, city.Ads)
		default:
			t.Fatalf("unexpected city %q", city.City)
		}
	}
}

func TestGeographicStableTieOrdering(t *testing.T) {
	users := []models.UserRecord{
		{Location: "Alpha"},
		{Location: "Beta"},
	}

	geo := Geographic(users, nil)

	require.Len(t, geo.TopCitiesByUsers, 2)
	// Equal counts keep first-encountered order.
	assert.Equal(t, "Alpha", geo.TopCitiesByUsers[0].City)
	assert.Equal(t, "Beta", geo.TopCitiesByUsers[1].City)
}

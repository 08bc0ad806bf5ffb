package report

import (
	"sort"
	"strings"

	"admin/internal/models"
)

// TopCitiesLimit bounds the geographic distribution lists.
const TopCitiesLimit = 6

// City extracts the city from a free-text location: the first comma-delimited
// segment, trimmed. The missing-location sentinel yields no city.
func City(location string) string {
	if location == "" || location == "Unknown" {
		return ""
	}
	segment, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(segment)
}

type cityTally struct {
	name  string
	count int
}

// tallyByCity counts locations per city, preserving first-encountered order
// so that equal counts keep a stable ordering after the sort.
func tallyByCity(locations []string) []cityTally {
	index := make(map[string]int)
	var tallies []cityTally

	for _, location := range locations {
		city := City(location)
		if city == "" {
			continue
		}
		if pos, ok := index[city]; ok {
			tallies[pos].count++
			continue
		}
		index[city] = len(tallies)
		tallies = append(tallies, cityTally{name: city, count: 1})
	}

	return tallies
}

func topN(tallies []cityTally, n int) []cityTally {
	sorted := make([]cityTally, len(tallies))
	copy(sorted, tallies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].count > sorted[j].count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Geographic builds the geo distribution: top cities by user count, and city
// performance (top cities by ad count with the user count alongside).
func Geographic(users []models.UserRecord, ads []models.AdRecord) models.GeoReport {
	userLocations := make([]string, 0, len(users))
	for _, u := range users {
		userLocations = append(userLocations, u.Location)
	}

	adLocations := make([]string, 0, len(ads))
	for _, ad := range ads {
		adLocations = append(adLocations, ad.Location)
	}

	userTallies := tallyByCity(userLocations)
	adTallies := tallyByCity(adLocations)

	usersPerCity := make(map[string]int, len(userTallies))
	for _, tally := range userTallies {
		usersPerCity[tally.name] = tally.count
	}

	geo := models.GeoReport{
		TopCitiesByUsers: make([]models.CityCount, 0, TopCitiesLimit),
		CityPerformance:  make([]models.CityCount, 0, TopCitiesLimit),
	}

	for _, tally := range topN(userTallies, TopCitiesLimit) {
		geo.TopCitiesByUsers = append(geo.TopCitiesByUsers, models.CityCount{
			City:  tally.name,
			Users: tally.count,
		})
	}

	for _, tally := range topN(adTallies, TopCitiesLimit) {
		geo.CityPerformance = append(geo.CityPerformance, models.CityCount{
			City:  tally.name,
			Users: usersPerCity[tally.name],
			Ads:   tally.count,
		})
	}

	return geo
}

// Package normalize maps raw backend records into flat view records. Every
// rule is total: a missing or malformed field resolves to its documented
// fallback, never an error.
package normalize

import (
	"fmt"
	"strings"
)

const (
	UnknownUser     = "Unknown User"
	UnknownLocation = "Unknown"
	MissingDate     = "-"
	MissingPrice    = "N/A"

	currencySymbol = "₹"
)

// datePart extracts the date portion of an ISO-8601 timestamp.
func datePart(timestamp string) string {
	if timestamp == "" {
		return MissingDate
	}
	if idx := strings.IndexByte(timestamp, 'T'); idx > 0 {
		return timestamp[:idx]
	}
	return timestamp
}

// displayPrice formats a price for display; zero counts as absent.
func displayPrice(price float64) string {
	if price == 0 {
		return MissingPrice
	}
	if price == float64(int64(price)) {
		return fmt.Sprintf("%s%d", currencySymbol, int64(price))
	}
	return fmt.Sprintf("%s%.2f", currencySymbol, price)
}

// fullName joins first and last name; if either part is missing the whole
// name falls back to the sentinel.
func fullName(first, last, fallback string) string {
	if first == "" || last == "" {
		return fallback
	}
	return first + " " + last
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

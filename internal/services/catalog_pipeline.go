package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/learnhub-ng/backend/internal/models"
)

// FilterCourses returns the courses matching the catalog query filters.
// The text query matches case-insensitively against title, instructor name or
// language; the language and level filters are equality checks applied only
// when set and not "all". All conditions are ANDed. The input slice is never
// mutated.
func FilterCourses(courses []models.Course, search, language, level string) []models.Course {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Title), search) &&
			!strings.Contains(strings.ToLower(c.Instructor), search) &&
			!strings.Contains(strings.ToLower(c.Language), search) {
			continue
		}
		if language != "" && language != "all" && !strings.EqualFold(c.Language, language) {
			continue
		}
		if level != "" && level != "all" && !strings.EqualFold(string(c.Level), level) {
			continue
		}
		filtered = append(filtered, c)
	}

	return filtered
}

// SortCourses returns a new slice ordered by the sort key. Sorting is stable,
// so courses equal under the key keep their input order. "newest" preserves
// the input order outright, which is assumed pre-sorted by creation time.
func SortCourses(courses []models.Course, key models.SortKey) []models.Course {
	sorted := make([]models.Course, len(courses))
	copy(sorted, courses)

	switch key {
	case models.SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StudentCount > sorted[j].StudentCount
		})
	case models.SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case models.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].PriceDisplay) < ParsePrice(sorted[j].PriceDisplay)
		})
	case models.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return ParsePrice(sorted[i].PriceDisplay) > ParsePrice(sorted[j].PriceDisplay)
		})
	case models.SortNewest:
		// Input order is creation order, keep it
	}

	return sorted
}

// ParsePrice parses a display-formatted price such as "₦2,500" or "Free".
// "Free" in any case is zero; currency symbols and separators are stripped.
// Malformed values degrade to zero rather than failing.
func ParsePrice(display string) float64 {
	display = strings.TrimSpace(display)
	if display == "" || strings.EqualFold(display, "free") {
		return 0
	}

	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return price
}

// FormatPrice renders a price for catalog display, "Free" for zero
func FormatPrice(price float64) string {
	if price <= 0 {
		return "Free"
	}
	if price == float64(int64(price)) {
		return fmt.Sprintf("₦%s", groupDigits(strconv.FormatInt(int64(price), 10)))
	}
	return fmt.Sprintf("₦%s", groupDigits(strconv.FormatFloat(price, 'f', 2, 64)))
}

// groupDigits inserts thousands separators into the integer part of a number
func groupDigits(s string) string {
	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}

	if len(intPart) <= 3 {
		return intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + fracPart
}

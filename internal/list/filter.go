package list

import (
	"strings"
	"time"
)

// FilterState is the user-entered filter input. It is applied entirely
// in-memory against the loaded page and never sent to the server.
type FilterState struct {
	SearchTerm string
	Status     string
	DateRange  string
}

// Matcher supplies the per-resource field extractors the filter works over.
type Matcher[T any] struct {
	Fields    func(item T) []string
	RawFields func(item T) []string
	Status    func(item T) string
	CreatedAt func(item T) string
}

// Apply filters items: the search term is a case-insensitive substring
// match OR-combined across Fields (RawFields keep their original case);
// the status and date-range filters are each AND-combined with the text
// match. The input slice is never mutated.
func Apply[T any](items []T, f FilterState, m Matcher[T]) []T {
	out := make([]T, 0, len(items))
	now := time.Now()
	for _, item := range items {
		if !matchText(item, f.SearchTerm, m) {
			continue
		}
		if !matchStatus(item, f.Status, m) {
			continue
		}
		if !matchDateRange(item, f.DateRange, m, now) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchText[T any](item T, term string, m Matcher[T]) bool {
	if term == "" {
		return true
	}
	lowered := strings.ToLower(term)
	if m.Fields != nil {
		for _, field := range m.Fields(item) {
			if strings.Contains(strings.ToLower(field), lowered) {
				return true
			}
		}
	}
	if m.RawFields != nil {
		for _, field := range m.RawFields(item) {
			if strings.Contains(field, term) {
				return true
			}
		}
	}
	return false
}

func matchStatus[T any](item T, status string, m Matcher[T]) bool {
	if status == "" || status == "all" || m.Status == nil {
		return true
	}
	return m.Status(item) == status
}

func matchDateRange[T any](item T, dateRange string, m Matcher[T], now time.Time) bool {
	if dateRange == "" || dateRange == "all" || m.CreatedAt == nil {
		return true
	}
	raw := m.CreatedAt(item)
	if raw == "" {
		return true
	}
	created, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return true
	}
	switch dateRange {
	case "today":
		y1, m1, d1 := created.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case "week":
		return !created.Before(now.AddDate(0, 0, -7))
	case "month":
		return !created.Before(now.AddDate(0, 0, -30))
	default:
		return true
	}
}

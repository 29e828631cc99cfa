// Package analysis computes the aggregate views the warden dashboard
// and the report exports are built from.
package analysis

import (
	"time"

	"hostelhub/backend/internal/models"
)

// CategoryStat is the per-category breakdown row.
type CategoryStat struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
	Pending  int    `json:"pending"`
	Resolved int    `json:"resolved"`
}

// Summary aggregates a complaint list for reporting.
type Summary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory []CategoryStat `json:"by_category"`
	// AvgResolutionHours is the mean time from creation to first
	// resolution over resolved complaints; zero when none are resolved.
	AvgResolutionHours float64 `json:"avg_resolution_hours"`
	// AvgRating is the mean of submitted ratings; zero when none exist.
	AvgRating float64 `json:"avg_rating"`
}

// Summarize walks the complaints once and fills every aggregate.
func Summarize(complaints []models.Complaint) Summary {
	summary := Summary{
		Total:    len(complaints),
		ByStatus: map[string]int{},
	}

	byCategory := make(map[string]*CategoryStat, len(models.ComplaintCategories))
	for _, category := range models.ComplaintCategories {
		byCategory[category] = &CategoryStat{Category: category}
	}

	var resolutionTotal time.Duration
	var resolvedCount, ratingTotal, ratingCount int

	for _, c := range complaints {
		summary.ByStatus[c.Status]++

		if stat, ok := byCategory[c.Category]; ok {
			stat.Total++
			switch c.Status {
			case models.StatusPending:
				stat.Pending++
			case models.StatusResolved:
				stat.Resolved++
			}
		}

		if c.ResolvedAt != nil {
			resolutionTotal += c.ResolvedAt.Sub(c.CreatedAt)
			resolvedCount++
		}
		if c.Rating != nil {
			ratingTotal += *c.Rating
			ratingCount++
		}
	}

	for _, category := range models.ComplaintCategories {
		summary.ByCategory = append(summary.ByCategory, *byCategory[category])
	}
	if resolvedCount > 0 {
		summary.AvgResolutionHours = resolutionTotal.Hours() / float64(resolvedCount)
	}
	if ratingCount > 0 {
		summary.AvgRating = float64(ratingTotal) / float64(ratingCount)
	}
	return summary
}

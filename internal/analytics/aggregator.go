package analytics

import (
	"sort"

	"github.com/xaenox/email-triage/internal/models"
)

// DefaultTopKeywords is how many keywords each category reports.
const DefaultTopKeywords = 5

// Aggregate computes per-category keyword analytics from a log snapshot.
// Every fixed category appears in the result, with an empty list when no
// emails matched it. Keywords are ranked by descending count; ties keep
// the order the keyword was first seen across the category's emails.
// Pure function of its input, so recomputing after the log grows always
// reflects the current state.
func Aggregate(log []models.ProcessedEmail, topN int) models.KeywordAnalytics {
	analytics := make(models.KeywordAnalytics, len(models.Categories))

	for _, category := range models.Categories {
		counts := make(map[string]int)
		firstSeen := make(map[string]int)
		position := 0

		for _, email := range log {
			if email.Category != category {
				continue
			}
			for _, keyword := range email.Keywords {
				if _, seen := counts[keyword]; !seen {
					firstSeen[keyword] = position
				}
				counts[keyword]++
				position++
			}
		}

		ranked := make([]string, 0, len(counts))
		for keyword := range counts {
			ranked = append(ranked, keyword)
		}
		sort.Slice(ranked, func(i, j int) bool {
			if counts[ranked[i]] != counts[ranked[j]] {
				return counts[ranked[i]] > counts[ranked[j]]
			}
			return firstSeen[ranked[i]] < firstSeen[ranked[j]]
		})

		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		analytics[category] = ranked
	}

	return analytics
}

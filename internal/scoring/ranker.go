package scoring

import (
	"math"
	"sort"

	"testseries-service/internal/models"
)

// Rank orders a test's results by total score descending, ties broken by
// less time spent, and assigns dense 1-based ranks plus percentiles. The
// same sort-index rank applies whether one result or the whole set is being
// updated, so tied scores always agree with a full recomputation.
func Rank(results []models.Result) []Placement {
	ordered := make([]models.Result, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalScore != ordered[j].TotalScore {
			return ordered[i].TotalScore > ordered[j].TotalScore
		}
		return ordered[i].TotalTimeSpentSeconds < ordered[j].TotalTimeSpentSeconds
	})

	total := len(ordered)
	placements := make([]Placement, total)
	for i, result := range ordered {
		placements[i] = Placement{
			ResultID:      result.ID,
			Rank:          i + 1,
			Percentile:    percentile(i+1, total),
			TotalAttempts: total,
		}
	}
	return placements
}

// percentile is the share of other attempts this result outperformed,
// rounded to 2 decimal places. A lone attempt scores 100.
func percentile(rank, total int) float64 {
	if total <= 1 {
		return 100
	}
	p := float64(total-rank) / float64(total-1) * 100
	return math.Round(p*100) / 100
}

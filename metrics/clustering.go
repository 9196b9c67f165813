package metrics

import (
	"sort"
	"time"

	"trapcheck/types"
)

const (
	// minSameDayReviews is how many reviews on one calendar day count as a
	// cluster.
	minSameDayReviews = 3
	// maxClusteredDates caps how many clustered days are reported.
	maxClusteredDates = 5
)

var reviewDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z", // without fractional seconds
	"2006-01-02",
}

func parseReviewDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range reviewDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// analyzeDateClustering detects days with abnormally many reviews. It is
// applied to the positive cohort: a manipulation campaign buys 5-star
// reviews, not 1-star ones, so bulk injection shows up there. Unparseable
// dates are skipped silently.
func analyzeDateClustering(reviews []types.Review) types.DateClustering {
	counts := make(map[string]int)
	totalDated := 0
	for _, r := range reviews {
		t, ok := parseReviewDate(r.PostedOn)
		if !ok {
			continue
		}
		counts[t.UTC().Format("2006-01-02")]++
		totalDated++
	}

	result := types.DateClustering{ClusteredDates: []types.DateCount{}}
	if totalDated == 0 {
		return result
	}

	days := make([]types.DateCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, types.DateCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].Count != days[j].Count {
			return days[i].Count > days[j].Count
		}
		return days[i].Date < days[j].Date
	})

	result.MaxSameDay = days[0].Count

	highVolume := 0
	for _, d := range days {
		if d.Count >= minSameDayReviews {
			highVolume += d.Count
		}
	}
	for i, d := range days {
		if i >= maxClusteredDates {
			break
		}
		if d.Count >= minSameDayReviews {
			result.ClusteredDates = append(result.ClusteredDates, d)
		}
	}

	result.ClusteringScore = round2(float64(highVolume) / float64(totalDated))
	return result
}

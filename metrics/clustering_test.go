package metrics

import (
	"fmt"
	"reflect"
	"testing"

	"trapcheck/types"
)

func datedReviews(dates ...string) []types.Review {
	reviews := make([]types.Review, len(dates))
	for i, d := range dates {
		reviews[i] = types.Review{Rating: 5, PostedOn: d}
	}
	return reviews
}

func TestAnalyzeDateClusteringBurst(t *testing.T) {
	// Five reviews on one day, five spread out: half the cohort landed on
	// a high-volume day.
	dates := []string{
		"2024-03-15", "2024-03-15", "2024-03-15", "2024-03-15", "2024-03-15",
		"2024-01-02", "2024-02-10", "2024-04-01", "2024-05-20", "2024-06-30",
	}

	got := analyzeDateClustering(datedReviews(dates...))

	if got.MaxSameDay != 5 {
		t.Errorf("MaxSameDay = %d, want 5", got.MaxSameDay)
	}
	if got.ClusteringScore != 0.5 {
		t.Errorf("ClusteringScore = %v, want 0.5", got.ClusteringScore)
	}
	want := []types.DateCount{{Date: "2024-03-15", Count: 5}}
	if !reflect.DeepEqual(got.ClusteredDates, want) {
		t.Errorf("ClusteredDates = %v, want %v", got.ClusteredDates, want)
	}
}

func TestAnalyzeDateClusteringNoDates(t *testing.T) {
	reviews := []types.Review{
		{Rating: 5, Text: "no date"},
		{Rating: 5, PostedOn: "sometime last year"},
	}

	got := analyzeDateClustering(reviews)

	if got.MaxSameDay != 0 || got.ClusteringScore != 0 {
		t.Errorf("got %+v, want zero clustering", got)
	}
	if got.ClusteredDates == nil || len(got.ClusteredDates) != 0 {
		t.Errorf("ClusteredDates = %v, want empty slice", got.ClusteredDates)
	}
}

func TestAnalyzeDateClusteringSkipsUnparseable(t *testing.T) {
	dates := []string{
		"2024-03-15", "2024-03-15", "2024-03-15",
		"garbage", "last week",
	}

	got := analyzeDateClustering(datedReviews(dates...))

	// Unparseable dates are excluded from the denominator.
	if got.ClusteringScore != 1.0 {
		t.Errorf("ClusteringScore = %v, want 1.0", got.ClusteringScore)
	}
}

func TestAnalyzeDateClusteringAcceptsTimestampFormats(t *testing.T) {
	dates := []string{
		"2024-03-15T10:30:00Z",
		"2024-03-15T22:15:44.123456Z",
		"2024-03-15",
	}

	got := analyzeDateClustering(datedReviews(dates...))

	if got.MaxSameDay != 3 {
		t.Errorf("MaxSameDay = %d, want 3 (all formats on the same day)", got.MaxSameDay)
	}
}

func TestAnalyzeDateClusteringBelowThreshold(t *testing.T) {
	// Two same-day reviews are normal, not a cluster.
	dates := []string{"2024-03-15", "2024-03-15", "2024-04-01"}

	got := analyzeDateClustering(datedReviews(dates...))

	if len(got.ClusteredDates) != 0 {
		t.Errorf("ClusteredDates = %v, want none", got.ClusteredDates)
	}
	if got.ClusteringScore != 0 {
		t.Errorf("ClusteringScore = %v, want 0", got.ClusteringScore)
	}
	if got.MaxSameDay != 2 {
		t.Errorf("MaxSameDay = %d, want 2", got.MaxSameDay)
	}
}

func TestAnalyzeDateClusteringCapsReportedDates(t *testing.T) {
	var dates []string
	for day := 1; day <= 6; day++ {
		for i := 0; i < 3; i++ {
			dates = append(dates, fmt.Sprintf("2024-03-%02d", day))
		}
	}

	got := analyzeDateClustering(datedReviews(dates...))

	if len(got.ClusteredDates) != 5 {
		t.Errorf("reported %d clustered dates, want cap of 5", len(got.ClusteredDates))
	}
	// All 18 reviews sit on high-volume days even though only 5 are listed.
	if got.ClusteringScore != 1.0 {
		t.Errorf("ClusteringScore = %v, want 1.0", got.ClusteringScore)
	}
}

func TestAnalyzeDateClusteringTieBreaksByDate(t *testing.T) {
	dates := []string{
		"2024-05-01", "2024-05-01", "2024-05-01",
		"2024-03-01", "2024-03-01", "2024-03-01",
	}

	got := analyzeDateClustering(datedReviews(dates...))

	want := []types.DateCount{
		{Date: "2024-03-01", Count: 3},
		{Date: "2024-05-01", Count: 3},
	}
	if !reflect.DeepEqual(got.ClusteredDates, want) {
		t.Errorf("ClusteredDates = %v, want %v", got.ClusteredDates, want)
	}
}

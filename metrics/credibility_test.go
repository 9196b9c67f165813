package metrics

import (
	"reflect"
	"testing"

	"trapcheck/types"
)

func TestScoreReviewer(t *testing.T) {
	tests := []struct {
		name      string
		reviewer  types.Reviewer
		wantScore int
		wantFlags []string
	}{
		{
			name:      "brand new account with no photos",
			reviewer:  types.Reviewer{ReviewCount: 0, PhotoCount: 0},
			wantScore: 20,
			wantFlags: []string{"new_account", "no_photos"},
		},
		{
			name:      "experienced local guide capped at 100",
			reviewer:  types.Reviewer{ReviewCount: 150, PhotoCount: 60, IsVerifiedLocal: true},
			wantScore: 100,
			wantFlags: []string{"experienced_reviewer", "photo_contributor", "local_guide"},
		},
		{
			name:      "absurd review count still capped",
			reviewer:  types.Reviewer{ReviewCount: 10000000, PhotoCount: 10000000, IsVerifiedLocal: true},
			wantScore: 100,
			wantFlags: []string{"experienced_reviewer", "photo_contributor", "local_guide"},
		},
		{
			name:      "four reviews falls between tiers",
			reviewer:  types.Reviewer{ReviewCount: 4, PhotoCount: 5},
			wantScore: 50,
			wantFlags: []string{},
		},
		{
			name:      "moderate reviewer with some photos",
			reviewer:  types.Reviewer{ReviewCount: 20, PhotoCount: 10},
			wantScore: 75,
			wantFlags: []string{"moderate_reviewer"},
		},
		{
			name:      "active reviewer bonus leaves no flag",
			reviewer:  types.Reviewer{ReviewCount: 5, PhotoCount: 10},
			wantScore: 65,
			wantFlags: []string{},
		},
		{
			name:      "local guide without photos",
			reviewer:  types.Reviewer{ReviewCount: 5, PhotoCount: 0, IsVerifiedLocal: true},
			wantScore: 65,
			wantFlags: []string{"no_photos", "local_guide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreReviewer(tt.reviewer)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(got.Flags, tt.wantFlags) {
				t.Errorf("Flags = %v, want %v", got.Flags, tt.wantFlags)
			}
			if got.ReviewCount != tt.reviewer.ReviewCount {
				t.Errorf("ReviewCount = %d, want %d", got.ReviewCount, tt.reviewer.ReviewCount)
			}
			if got.IsVerifiedLocal != tt.reviewer.IsVerifiedLocal {
				t.Errorf("IsVerifiedLocal = %v, want %v", got.IsVerifiedLocal, tt.reviewer.IsVerifiedLocal)
			}
		})
	}
}

func TestScoreReviewerBounds(t *testing.T) {
	// Every combination of tiers must land inside 0-100.
	counts := []int{0, 3, 4, 5, 19, 20, 99, 100, 5000}
	photos := []int{0, 5, 9, 10, 49, 50, 900}
	for _, rc := range counts {
		for _, pc := range photos {
			for _, local := range []bool{false, true} {
				got := ScoreReviewer(types.Reviewer{ReviewCount: rc, PhotoCount: pc, IsVerifiedLocal: local})
				if got.Score < 0 || got.Score > 100 {
					t.Errorf("ScoreReviewer(%d, %d, %v) = %d, out of range", rc, pc, local, got.Score)
				}
			}
		}
	}
}

package metrics

import (
	"strings"
	"unicode/utf8"

	"trapcheck/types"
)

// analyzeReview extracts all per-review features. withSpecificity is set
// for the positive cohort only: specificity scoring exists to separate
// genuine detailed praise from generic filler, which is meaningless for
// negative reviews. Never fails; malformed input degrades to zero values.
func analyzeReview(r types.Review, vt types.VenueType, withSpecificity bool) types.ReviewFeatures {
	f := types.ReviewFeatures{
		Rating:               r.Rating,
		TextLength:           utf8.RuneCountInString(r.Text),
		Credibility:          ScoreReviewer(r.Reviewer),
		TrapKeywords:         detectKeywords(r.Text, trapAwarenessKeywords),
		ManipulationKeywords: detectKeywords(r.Text, manipulationKeywords),
		QualityKeywords:      detectKeywords(r.Text, qualityKeywordsFor(vt)),
		HasImages:            r.HasPhotos,
		PostedOn:             r.PostedOn,
		Upvotes:              r.Upvotes,
	}

	// The service-vs-quality gap only means something where both sub-ratings
	// exist as a convention, i.e. restaurants.
	if vt == types.VenueRestaurant {
		f.SubRatingGap = subRatingGap(r.SubRatings)
	}

	if withSpecificity {
		s := scoreSpecificity(r.Text, vt)
		f.SpecificityScore = &s
	}

	return f
}

// subRatingGap returns service minus food/quality, or nil when either
// sub-rating is absent.
func subRatingGap(sub map[string]int) *int {
	if len(sub) == 0 {
		return nil
	}
	service, okService := lookupSubRating(sub, "service")
	food, okFood := lookupSubRating(sub, "food", "quality")
	if !okService || !okFood {
		return nil
	}
	gap := service - food
	return &gap
}

func lookupSubRating(sub map[string]int, names ...string) (int, bool) {
	for _, name := range names {
		if v, ok := sub[name]; ok {
			return v, true
		}
		for k, v := range sub {
			if strings.EqualFold(k, name) {
				return v, true
			}
		}
	}
	return 0, false
}

package metrics

import (
	"fmt"
	"math"
	"sort"

	"trapcheck/types"
)

const (
	// Signal thresholds. These are calibrated constants: changing any of
	// them changes externally visible behavior.
	credibilityGapThreshold     = 10.0
	credibilityGapHighThreshold = 20.0
	trapWarningMinReviews       = 3
	manipulationMinReviews      = 2
	clusteringScoreThreshold    = 0.3
	photoRateGapThreshold       = 0.2
	subRatingGapMin             = 2
	disparityMinReviews         = 2
	touristLanguageHighPct      = 70.0
	touristLanguageLowPct       = 50.0
	genericSpecificityMax       = 40.0

	// topCredibleReviews is how many reviews per cohort are handed to the
	// LLM as curated evidence.
	topCredibleReviews = 10
)

// Engine computes review metrics. It holds only read-only configuration
// (the optional language detector), so a single Engine is safe to share
// across goroutines.
type Engine struct {
	detector Detector
}

// NewEngine returns an Engine. detector may be nil, in which case language
// analysis reports detected=false for every cohort.
func NewEngine(detector Detector) *Engine {
	return &Engine{detector: detector}
}

// Compute turns the two review cohorts into the full metrics bundle:
// summary aggregates, the fired signal list, date clustering, per-cohort
// language distributions, and the curated most-credible reviews. It is a
// pure function of its inputs and never fails; empty cohorts produce zero
// rates and an empty signal list.
func (e *Engine) Compute(reviewsLow, reviewsHigh []types.Review, venueType types.VenueType) types.MetricsResult {
	analyzedLow := make([]types.ReviewFeatures, 0, len(reviewsLow))
	for _, r := range reviewsLow {
		analyzedLow = append(analyzedLow, analyzeReview(r, venueType, false))
	}
	analyzedHigh := make([]types.ReviewFeatures, 0, len(reviewsHigh))
	for _, r := range reviewsHigh {
		analyzedHigh = append(analyzedHigh, analyzeReview(r, venueType, true))
	}

	// Credibility aggregates. A positive gap means the negative reviewers
	// are the more trustworthy cohort, which is the inversion a trap shows.
	avgCredLow := averageCredibility(analyzedLow)
	avgCredHigh := averageCredibility(analyzedHigh)
	credibilityGap := avgCredLow - avgCredHigh

	localGuidesLow := 0
	for _, a := range analyzedLow {
		if a.Credibility.IsVerifiedLocal {
			localGuidesLow++
		}
	}
	localGuidesHigh := 0
	for _, a := range analyzedHigh {
		if a.Credibility.IsVerifiedLocal {
			localGuidesHigh++
		}
	}

	// Keyword aggregates over the negative cohort.
	trapMentions := 0
	manipulationMentions := 0
	qualityMentions := 0
	var allTrapKeywords, allManipulationKeywords []string
	for _, a := range analyzedLow {
		if len(a.TrapKeywords) > 0 {
			trapMentions++
			allTrapKeywords = append(allTrapKeywords, a.TrapKeywords...)
		}
		if len(a.ManipulationKeywords) > 0 {
			manipulationMentions++
			allManipulationKeywords = append(allManipulationKeywords, a.ManipulationKeywords...)
		}
		if len(a.QualityKeywords) > 0 {
			qualityMentions++
		}
	}

	// Photo rates per cohort.
	photoRateLow := photoRate(analyzedLow)
	photoRateHigh := photoRate(analyzedHigh)

	// Service-vs-quality disparity in the negative cohort.
	disparityReviews := 0
	for _, a := range analyzedLow {
		if a.SubRatingGap != nil && *a.SubRatingGap >= subRatingGapMin {
			disparityReviews++
		}
	}

	// Specificity of positive reviews.
	specificitySum := 0
	specificityCount := 0
	for _, a := range analyzedHigh {
		if a.SpecificityScore != nil {
			specificitySum += *a.SpecificityScore
			specificityCount++
		}
	}
	avgSpecificity := 0.0
	if specificityCount > 0 {
		avgSpecificity = float64(specificitySum) / float64(specificityCount)
	}

	// Community validation of negative reviews.
	upvotesLow := 0
	for _, a := range analyzedLow {
		upvotesLow += a.Upvotes
	}
	avgUpvotesLow := 0.0
	if len(analyzedLow) > 0 {
		avgUpvotesLow = float64(upvotesLow) / float64(len(analyzedLow))
	}

	clustering := analyzeDateClustering(reviewsHigh)
	langPositive := e.analyzeLanguages(reviewsHigh)
	langNegative := e.analyzeLanguages(reviewsLow)

	// Every rule is evaluated on every call; no short-circuiting.
	signals := []types.Signal{}

	if credibilityGap > credibilityGapThreshold {
		severity := types.SeverityMedium
		if credibilityGap > credibilityGapHighThreshold {
			severity = types.SeverityHigh
		}
		signals = append(signals, types.Signal{
			Signal:   types.SignalCredibilityInversion,
			Severity: severity,
			Detail:   fmt.Sprintf("Negative reviewers are more credible (gap: +%.0f points)", credibilityGap),
		})
	}

	if trapMentions >= trapWarningMinReviews {
		signals = append(signals, types.Signal{
			Signal:   types.SignalExplicitTrapWarnings,
			Severity: types.SeverityHigh,
			Detail:   fmt.Sprintf("%d reviews explicitly warn about tourist trap behavior", trapMentions),
			Keywords: uniqueStrings(allTrapKeywords),
		})
	}

	if manipulationMentions >= manipulationMinReviews {
		signals = append(signals, types.Signal{
			Signal:   types.SignalManipulationAccusations,
			Severity: types.SeverityHigh,
			Detail:   fmt.Sprintf("%d reviews mention fake or bought reviews", manipulationMentions),
			Keywords: uniqueStrings(allManipulationKeywords),
		})
	}

	if clustering.ClusteringScore > clusteringScoreThreshold {
		signals = append(signals, types.Signal{
			Signal:   types.SignalReviewClustering,
			Severity: types.SeverityMedium,
			Detail:   fmt.Sprintf("%.0f%% of positive reviews were posted on high-volume days", clustering.ClusteringScore*100),
			Dates:    clustering.ClusteredDates,
		})
	}

	if photoRateLow > photoRateHigh+photoRateGapThreshold {
		signals = append(signals, types.Signal{
			Signal:   types.SignalPhotoCredibilityGap,
			Severity: types.SeverityMedium,
			Detail:   fmt.Sprintf("Negative reviews have more photos (%.0f%% vs %.0f%%)", photoRateLow*100, photoRateHigh*100),
		})
	}

	if localGuidesLow > localGuidesHigh {
		signals = append(signals, types.Signal{
			Signal:   types.SignalLocalGuideWarnings,
			Severity: types.SeverityMedium,
			Detail:   fmt.Sprintf("More verified locals in negative reviews (%d) than positive (%d)", localGuidesLow, localGuidesHigh),
		})
	}

	if venueType == types.VenueRestaurant && disparityReviews >= disparityMinReviews {
		signals = append(signals, types.Signal{
			Signal:   types.SignalServiceFoodDisparity,
			Severity: types.SeverityMedium,
			Detail:   fmt.Sprintf("%d reviews rate service high but food low", disparityReviews),
		})
	}

	if langPositive.Detected && langNegative.Detected &&
		langPositive.TouristLanguagePct > touristLanguageHighPct &&
		langNegative.TouristLanguagePct < touristLanguageLowPct {
		signals = append(signals, types.Signal{
			Signal:   types.SignalLanguageCredibilitySplit,
			Severity: types.SeverityHigh,
			Detail: fmt.Sprintf("Positive reviews skew tourist languages (%.0f%%) while negative reviews skew local (%.0f%% tourist)",
				langPositive.TouristLanguagePct, langNegative.TouristLanguagePct),
		})
	}

	if specificityCount > 0 && avgSpecificity < genericSpecificityMax {
		signals = append(signals, types.Signal{
			Signal:   types.SignalGenericPositiveReviews,
			Severity: types.SeverityMedium,
			Detail:   fmt.Sprintf("Positive reviews read generic (avg specificity %.0f/100)", avgSpecificity),
		})
	}

	return types.MetricsResult{
		Summary: types.MetricsSummary{
			TotalLowRatingReviews:       len(reviewsLow),
			TotalHighRatingReviews:      len(reviewsHigh),
			AvgCredibilityLowRating:     round1(avgCredLow),
			AvgCredibilityHighRating:    round1(avgCredHigh),
			CredibilityGap:              round1(credibilityGap),
			LocalGuidesInNegative:       localGuidesLow,
			LocalGuidesInPositive:       localGuidesHigh,
			TrapWarningCount:            trapMentions,
			ManipulationAccusationCount: manipulationMentions,
			QualityComplaintCount:       qualityMentions,
			AvgSpecificityPositive:      round1(avgSpecificity),
			AvgUpvotesNegative:          round1(avgUpvotesLow),
		},
		Signals:        signals,
		DateClustering: clustering,
		LanguageAnalysis: types.LanguageAnalysis{
			Positive: langPositive,
			Negative: langNegative,
		},
		CredibleNegativeReviews: curateTopReviews(reviewsLow, analyzedLow),
		CrediblePositiveReviews: curateTopReviews(reviewsHigh, analyzedHigh),
	}
}

// curateTopReviews picks the highest-credibility reviews from a cohort,
// keeping input order among equals so the result is deterministic.
func curateTopReviews(reviews []types.Review, features []types.ReviewFeatures) []types.CuratedReview {
	idx := make([]int, len(features))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return features[idx[a]].Credibility.Score > features[idx[b]].Credibility.Score
	})

	n := topCredibleReviews
	if len(idx) < n {
		n = len(idx)
	}
	curated := make([]types.CuratedReview, 0, n)
	for _, i := range idx[:n] {
		curated = append(curated, types.CuratedReview{
			Text:                 reviews[i].Text,
			Rating:               features[i].Rating,
			CredibilityScore:     features[i].Credibility.Score,
			IsVerifiedLocal:      features[i].Credibility.IsVerifiedLocal,
			ReviewerTotalReviews: features[i].Credibility.ReviewCount,
			TrapKeywords:         features[i].TrapKeywords,
			ManipulationKeywords: features[i].ManipulationKeywords,
			SpecificityScore:     features[i].SpecificityScore,
		})
	}
	return curated
}

func averageCredibility(features []types.ReviewFeatures) float64 {
	if len(features) == 0 {
		return 0
	}
	sum := 0
	for _, f := range features {
		sum += f.Credibility.Score
	}
	return float64(sum) / float64(len(features))
}

func photoRate(features []types.ReviewFeatures) float64 {
	if len(features) == 0 {
		return 0
	}
	withPhotos := 0
	for _, f := range features {
		if f.HasImages {
			withPhotos++
		}
	}
	return float64(withPhotos) / float64(len(features))
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

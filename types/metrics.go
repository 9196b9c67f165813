package types

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SignalName is the closed catalog of trap signals. The first nine are
// emitted by the metrics engine; the last two are appended by the
// orchestration layer from external collaborator results.
type SignalName string

const (
	SignalCredibilityInversion       SignalName = "credibility_inversion"
	SignalExplicitTrapWarnings       SignalName = "explicit_trap_warnings"
	SignalManipulationAccusations    SignalName = "manipulation_accusations"
	SignalReviewClustering           SignalName = "review_clustering"
	SignalPhotoCredibilityGap        SignalName = "photo_credibility_gap"
	SignalLocalGuideWarnings         SignalName = "local_guide_warnings"
	SignalServiceFoodDisparity       SignalName = "service_food_disparity"
	SignalLanguageCredibilitySplit   SignalName = "language_credibility_split"
	SignalGenericPositiveReviews     SignalName = "generic_positive_reviews"
	SignalTouristHotspotLocation     SignalName = "tourist_hotspot_location"
	SignalExternalNegativeReputation SignalName = "external_negative_reputation"
)

// Signal is one named, severity-tagged piece of evidence. Keywords and Dates
// carry the typed detail payload for the signals that have one.
type Signal struct {
	Signal   SignalName  `json:"signal"`
	Severity Severity    `json:"severity"`
	Detail   string      `json:"detail"`
	Keywords []string    `json:"keywords,omitempty"`
	Dates    []DateCount `json:"dates,omitempty"`
}

// CredibilityScore is the 0-100 trust score for a reviewer plus the
// qualitative flags explaining which tiers fired.
type CredibilityScore struct {
	Score           int      `json:"score"`
	Flags           []string `json:"flags"`
	ReviewCount     int      `json:"review_count"`
	PhotoCount      int      `json:"photo_count"`
	IsVerifiedLocal bool     `json:"is_verified_local"`
}

// ReviewFeatures is everything extracted from a single review.
type ReviewFeatures struct {
	Rating               float64          `json:"rating"`
	TextLength           int              `json:"text_length"`
	Credibility          CredibilityScore `json:"credibility"`
	TrapKeywords         []string         `json:"trap_keywords"`
	ManipulationKeywords []string         `json:"manipulation_keywords"`
	QualityKeywords      []string         `json:"quality_keywords"`
	HasImages            bool             `json:"has_images"`
	SubRatingGap         *int             `json:"sub_rating_gap,omitempty"`
	SpecificityScore     *int             `json:"specificity_score,omitempty"`
	PostedOn             string           `json:"posted_on,omitempty"`
	Upvotes              int              `json:"upvotes"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DateClustering reports same-day review volume in the positive cohort.
type DateClustering struct {
	ClusteredDates  []DateCount `json:"clustered_dates"`
	MaxSameDay      int         `json:"max_same_day"`
	ClusteringScore float64     `json:"clustering_score"`
}

// LanguageStats is the per-cohort language distribution. Detected is false
// when no detector is available or no review text was long enough to
// classify reliably.
type LanguageStats struct {
	Detected           bool           `json:"detected"`
	TotalAnalyzed      int            `json:"total_analyzed,omitempty"`
	Distribution       map[string]int `json:"distribution,omitempty"`
	TouristLanguagePct float64        `json:"tourist_language_pct,omitempty"`
	DominantLanguage   string         `json:"dominant_language,omitempty"`
	EnglishPct         float64        `json:"english_pct,omitempty"`
}

type LanguageAnalysis struct {
	Positive LanguageStats `json:"positive"`
	Negative LanguageStats `json:"negative"`
}

// MetricsSummary carries the aggregate counts and rates across both cohorts.
type MetricsSummary struct {
	TotalLowRatingReviews       int     `json:"total_low_rating_reviews"`
	TotalHighRatingReviews      int     `json:"total_high_rating_reviews"`
	AvgCredibilityLowRating     float64 `json:"avg_credibility_low_rating"`
	AvgCredibilityHighRating    float64 `json:"avg_credibility_high_rating"`
	CredibilityGap              float64 `json:"credibility_gap"`
	LocalGuidesInNegative       int     `json:"local_guides_in_negative"`
	LocalGuidesInPositive       int     `json:"local_guides_in_positive"`
	TrapWarningCount            int     `json:"trap_warning_count"`
	ManipulationAccusationCount int     `json:"manipulation_accusation_count"`
	QualityComplaintCount       int     `json:"quality_complaint_count"`
	AvgSpecificityPositive      float64 `json:"avg_specificity_positive"`
	AvgUpvotesNegative          float64 `json:"avg_upvotes_negative"`
}

// CuratedReview is one of the most-credible reviews selected from a cohort
// as evidence for the downstream LLM prompt.
type CuratedReview struct {
	Text                 string   `json:"text"`
	Rating               float64  `json:"rating"`
	CredibilityScore     int      `json:"credibility_score"`
	IsVerifiedLocal      bool     `json:"is_verified_local"`
	ReviewerTotalReviews int      `json:"reviewer_total_reviews"`
	TrapKeywords         []string `json:"trap_keywords,omitempty"`
	ManipulationKeywords []string `json:"manipulation_keywords,omitempty"`
	SpecificityScore     *int     `json:"specificity_score,omitempty"`
}

// MetricsResult is the engine's full output contract. It is recomputed from
// scratch on every call and is plain JSON-serializable data.
type MetricsResult struct {
	Summary                 MetricsSummary   `json:"summary"`
	Signals                 []Signal         `json:"signals"`
	DateClustering          DateClustering   `json:"date_clustering"`
	LanguageAnalysis        LanguageAnalysis `json:"language_analysis"`
	CredibleNegativeReviews []CuratedReview  `json:"credible_negative_reviews"`
	CrediblePositiveReviews []CuratedReview  `json:"credible_positive_reviews"`
}

package types

// ExternalOpinions aggregates sentiment found on outside platforms
// (Reddit, TripAdvisor forums, blogs). Zero values are the neutral
// fallback when the search collaborator is unavailable or fails.
type ExternalOpinions struct {
	ExternalWarnings        int      `json:"external_warnings"`
	ExternalRecommendations int      `json:"external_recommendations"`
	RedditSentiment         string   `json:"reddit_sentiment"`
	TripadvisorSentiment    string   `json:"tripadvisor_sentiment"`
	BlogSentiment           string   `json:"blog_sentiment"`
	NotableQuotes           []string `json:"notable_quotes,omitempty"`
	Summary                 string   `json:"summary"`
}

// ProximityInfo describes how touristy the venue's surroundings are.
type ProximityInfo struct {
	NearAttractions  []string `json:"near_attractions,omitempty"`
	IsTouristHotspot bool     `json:"is_tourist_hotspot"`
	ProximityScore   int      `json:"proximity_score"`
	Reasoning        string   `json:"reasoning"`
}

// Concern pairs an issue the LLM raised with the evidence it cited.
type Concern struct {
	Concern  string `json:"concern"`
	Evidence string `json:"evidence"`
}

// AnalysisMeta identifies what was analyzed.
type AnalysisMeta struct {
	AnalysisID       string    `json:"analysis_id"`
	Query            string    `json:"query"`
	Location         string    `json:"location,omitempty"`
	PlaceName        string    `json:"place_name"`
	PlaceAddress     string    `json:"place_address"`
	PlaceRating      float64   `json:"place_rating"`
	PlaceReviewCount int       `json:"place_review_count"`
	VenueType        VenueType `json:"venue_type"`
	ReviewsAnalyzed  int       `json:"reviews_analyzed"`
	GoogleMapsURL    string    `json:"google_maps_url,omitempty"`
}

// Analysis is the full verdict returned to the UI: the LLM judgment plus
// the deterministic metrics that informed it.
type Analysis struct {
	TouristTrapScore  int            `json:"tourist_trap_score"`
	Confidence        string         `json:"confidence"`
	Classification    string         `json:"classification"`
	Verdict           string         `json:"verdict"`
	KeyConcerns       []Concern      `json:"key_concerns,omitempty"`
	MitigatingFactors []string       `json:"mitigating_factors,omitempty"`
	Recommendation    string         `json:"recommendation"`
	Reasoning         string         `json:"reasoning"`
	Meta              AnalysisMeta   `json:"meta"`
	ComputedMetrics   MetricsSummary `json:"computed_metrics"`
	Signals           []Signal       `json:"signals"`
}

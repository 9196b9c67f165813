package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"trapcheck/types"
)

const systemPrompt = `You are an expert analyst helping identify tourist traps based on pre-computed metrics and review data.

You will receive:
1. COMPUTED SIGNALS - Quantitative metrics already extracted from reviews
2. EXTERNAL SIGNALS - Location context and sentiment from outside platforms
3. CREDIBLE NEGATIVE REVIEWS - The most trustworthy negative reviews (from experienced reviewers)
4. CREDIBLE POSITIVE REVIEWS - The most trustworthy positive reviews, with specificity scores
5. PLACE METADATA - Basic info about the venue

Your job is to:
1. Interpret the signals and determine if this is a tourist trap
2. Explain the reasoning in a way a traveler would understand
3. Provide an actionable verdict

## Scoring Guidelines

Use the computed signals to inform your score:
- credibility_inversion (negative reviewers more credible) = strong trap signal
- explicit_trap_warnings (reviews calling it a trap) = very strong signal
- manipulation_accusations (fake review claims) = critical signal
- review_clustering (many reviews same day) = manipulation indicator
- local_guide_warnings (Local Guides in negatives) = trust their assessment
- generic_positive_reviews (low specificity) = suspicious praise
- external_negative_reputation = outside platforms agree with the negatives

## Output Format

Respond with valid JSON only:
{
  "tourist_trap_score": <0-100>,
  "confidence": "<high|medium|low>",
  "classification": "<definite_trap|likely_trap|possibly_trap|unclear|likely_authentic|verified_authentic>",
  "verdict": "<one sentence summary>",
  "key_concerns": [
    {"concern": "<issue>", "evidence": "<specific quote or metric>"}
  ],
  "mitigating_factors": ["<any positives>"],
  "recommendation": "<should a tourist visit? with caveats>",
  "reasoning": "<2-3 paragraph analysis>"
}`

const (
	maxPromptNegativeReviews = 8
	maxPromptPositiveReviews = 3
	negativeTextLimit        = 500
	positiveTextLimit        = 250
)

func buildPrompt(place *types.Place, venueType types.VenueType, result types.MetricsResult, external types.ExternalOpinions, proximity types.ProximityInfo, calibration string) string {
	var b strings.Builder

	fmt.Fprintf(&b, `## VENUE INFORMATION
Name: %s
Address: %s
Overall Rating: %.1f stars
Total Reviews: %d
Price Level: %s
Type: %s

## COMPUTED SIGNALS

### Summary Metrics
- Low-rating reviews analyzed: %d
- High-rating reviews analyzed: %d
- Average credibility of negative reviewers: %.1f/100
- Average credibility of positive reviewers: %.1f/100
- Credibility gap: %+.1f (positive = negative reviewers more credible)
- Local Guides in negative reviews: %d
- Local Guides in positive reviews: %d
- Reviews explicitly warning "tourist trap": %d
- Reviews accusing fake/bought reviews: %d
- Reviews with quality complaints: %d
- Average specificity of positive reviews: %.1f/100

### Detected Signals
%s

### Review Date Clustering (in positive reviews)
%s

## EXTERNAL SIGNALS

### Location Analysis
- Tourist Hotspot: %s
- Proximity Score: %d/100
- Assessment: %s

### External Opinions
- Reddit Sentiment: %s
- TripAdvisor Sentiment: %s
- Blog Sentiment: %s
- External Warnings: %d
- External Recommendations: %d
- Summary: %s
`,
		place.Name,
		place.Address,
		place.Rating,
		place.ReviewCount,
		orDefault(place.PriceLevel, "Not specified"),
		venueType,
		result.Summary.TotalLowRatingReviews,
		result.Summary.TotalHighRatingReviews,
		result.Summary.AvgCredibilityLowRating,
		result.Summary.AvgCredibilityHighRating,
		result.Summary.CredibilityGap,
		result.Summary.LocalGuidesInNegative,
		result.Summary.LocalGuidesInPositive,
		result.Summary.TrapWarningCount,
		result.Summary.ManipulationAccusationCount,
		result.Summary.QualityComplaintCount,
		result.Summary.AvgSpecificityPositive,
		signalsJSON(result.Signals),
		indentJSON(result.DateClustering),
		yesNo(proximity.IsTouristHotspot),
		proximity.ProximityScore,
		orDefault(proximity.Reasoning, "N/A"),
		orDefault(external.RedditSentiment, "none"),
		orDefault(external.TripadvisorSentiment, "none"),
		orDefault(external.BlogSentiment, "none"),
		external.ExternalWarnings,
		external.ExternalRecommendations,
		orDefault(external.Summary, "No data"),
	)

	if calibration != "" {
		b.WriteString("\n")
		b.WriteString(calibration)
	}

	b.WriteString(`
## MOST CREDIBLE NEGATIVE REVIEWS

These are the negative reviews from the most experienced/trustworthy reviewers:
`)
	for i, review := range firstReviews(result.CredibleNegativeReviews, maxPromptNegativeReviews) {
		fmt.Fprintf(&b, `
### Review %d
- Rating: %.0f/5
- Reviewer credibility: %d/100
- Local Guide: %s
- Reviewer's total reviews: %d
- Trap keywords found: %s
- Manipulation keywords: %s
- Text: "%s"
`,
			i+1,
			review.Rating,
			review.CredibilityScore,
			yesNo(review.IsVerifiedLocal),
			review.ReviewerTotalReviews,
			keywordList(review.TrapKeywords),
			keywordList(review.ManipulationKeywords),
			truncate(review.Text, negativeTextLimit),
		)
	}

	b.WriteString(`
## MOST CREDIBLE POSITIVE REVIEWS
`)
	for i, review := range firstReviews(result.CrediblePositiveReviews, maxPromptPositiveReviews) {
		fmt.Fprintf(&b, `
### Positive Review %d
- Rating: %.0f/5
- Reviewer credibility: %d/100
- Specificity score: %s/100
- Local Guide: %s
- Text: "%s"
`,
			i+1,
			review.Rating,
			review.CredibilityScore,
			specificityValue(review.SpecificityScore),
			yesNo(review.IsVerifiedLocal),
			truncate(review.Text, positiveTextLimit),
		)
	}

	b.WriteString("\n\nBased on these metrics and reviews, provide your analysis as JSON.")
	return b.String()
}

func signalsJSON(signals []types.Signal) string {
	if len(signals) == 0 {
		return "No significant signals detected"
	}
	return indentJSON(signals)
}

func indentJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func firstReviews(reviews []types.CuratedReview, n int) []types.CuratedReview {
	if len(reviews) > n {
		return reviews[:n]
	}
	return reviews
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "None"
	}
	return strings.Join(keywords, ", ")
}

func specificityValue(score *int) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *score)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Package analyzer orchestrates a full venue analysis: place lookup,
// stratified review fetch, deterministic metrics, external context, and
// the final LLM verdict.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"trapcheck/metrics"
	"trapcheck/places"
	"trapcheck/rag"
	"trapcheck/types"
	"trapcheck/websearch"
	"trapcheck/workers"
)

const (
	verdictMaxTokens      = 2048
	proximitySignalMin    = 71
	negativeSentimentMin  = 2
	calibrationPerVerdict = 2
	externalCallSpacing   = 200 * time.Millisecond
	defaultReviewsPerTier = 30
)

// Analyzer wires the collaborators for AnalyzeVenue. Retriever may be nil
// when no calibration database is configured.
type Analyzer struct {
	openaiClient   *openai.Client
	placesClient   *places.Client
	engine         *metrics.Engine
	retriever      *rag.Retriever
	reviewsPerTier int
}

// New builds an Analyzer. reviewsPerTier caps how many reviews are fetched
// per rating tier; values below 1 fall back to the default of 30.
func New(openaiClient *openai.Client, placesClient *places.Client, engine *metrics.Engine, retriever *rag.Retriever, reviewsPerTier int) *Analyzer {
	if reviewsPerTier < 1 {
		reviewsPerTier = defaultReviewsPerTier
	}
	return &Analyzer{
		openaiClient:   openaiClient,
		placesClient:   placesClient,
		engine:         engine,
		retriever:      retriever,
		reviewsPerTier: reviewsPerTier,
	}
}

// AnalyzeVenue runs the whole pipeline for one venue. query is a business
// name or Google Maps URL; location narrows the search and may be empty
// when the query is a URL.
func (a *Analyzer) AnalyzeVenue(ctx context.Context, query, location string) (*types.Analysis, error) {
	log.WithField("query", query).WithField("location", location).Info("analyzing venue")

	place, err := a.placesClient.SearchPlace(ctx, query, location)
	if err != nil {
		return nil, fmt.Errorf("search place: %w", err)
	}
	if place == nil {
		return nil, fmt.Errorf("could not find place: %q", query)
	}
	if place.DataID == "" {
		return nil, fmt.Errorf("no review data available for %q", place.Name)
	}

	venueType := metrics.InferVenueType(place.Name, place.Categories)
	log.Infof("found %s (%.1f* from %d reviews), venue type %s", place.Name, place.Rating, place.ReviewCount, venueType)

	reviewsLow, reviewsHigh, err := a.placesClient.FetchStratifiedReviews(ctx, place.DataID, a.reviewsPerTier)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	log.Infof("retrieved %d low-rated and %d high-rated reviews", len(reviewsLow), len(reviewsHigh))

	result := a.engine.Compute(reviewsLow, reviewsHigh, venueType)

	external, proximity := a.gatherExternalContext(ctx, place, venueType, location)
	result.Signals = appendExternalSignals(result.Signals, external, proximity)

	calibration := a.calibrationSection(place, venueType, location)

	analysis, err := a.requestVerdict(ctx, place, venueType, result, external, proximity, calibration)
	if err != nil {
		return nil, err
	}

	analysis.Meta = types.AnalysisMeta{
		AnalysisID:       uuid.NewString(),
		Query:            query,
		Location:         location,
		PlaceName:        place.Name,
		PlaceAddress:     place.Address,
		PlaceRating:      place.Rating,
		PlaceReviewCount: place.ReviewCount,
		VenueType:        venueType,
		ReviewsAnalyzed:  len(reviewsLow) + len(reviewsHigh),
		GoogleMapsURL:    place.GoogleMapsURL,
	}
	analysis.ComputedMetrics = result.Summary
	analysis.Signals = result.Signals
	return analysis, nil
}

// gatherExternalContext runs the two external LLM lookups on a small pool
// so neither call delays the other.
func (a *Analyzer) gatherExternalContext(ctx context.Context, place *types.Place, venueType types.VenueType, location string) (types.ExternalOpinions, types.ProximityInfo) {
	var (
		external  types.ExternalOpinions
		proximity types.ProximityInfo
	)

	pool := workers.NewPool(2, externalCallSpacing)
	pool.Submit(func() {
		external = websearch.SearchExternalOpinions(ctx, a.openaiClient, place.Name, location, venueType)
	})
	pool.Submit(func() {
		proximity = websearch.CheckTouristProximity(ctx, a.openaiClient, place.Name, place.Address, location)
	})
	pool.Close()

	return external, proximity
}

// appendExternalSignals extends the engine's signal list with the two
// signals that depend on external collaborators.
func appendExternalSignals(signals []types.Signal, external types.ExternalOpinions, proximity types.ProximityInfo) []types.Signal {
	if proximity.ProximityScore >= proximitySignalMin {
		signals = append(signals, types.Signal{
			Signal:   types.SignalTouristHotspotLocation,
			Severity: types.SeverityMedium,
			Detail:   fmt.Sprintf("Located in high-tourist area (score: %d/100)", proximity.ProximityScore),
		})
	}

	negatives := 0
	for _, sentiment := range []string{external.RedditSentiment, external.TripadvisorSentiment, external.BlogSentiment} {
		if sentiment == "negative" {
			negatives++
		}
	}
	if negatives >= negativeSentimentMin {
		signals = append(signals, types.Signal{
			Signal:   types.SignalExternalNegativeReputation,
			Severity: types.SeverityHigh,
			Detail:   "Negative sentiment on external platforms",
		})
	}
	return signals
}

func (a *Analyzer) calibrationSection(place *types.Place, venueType types.VenueType, location string) string {
	if a.retriever == nil {
		return ""
	}
	query := place.Name
	if location != "" {
		query += " " + location
	}
	set := a.retriever.RetrieveCalibrationExamples(query, venueType, calibrationPerVerdict)
	return rag.FormatExamplesForPrompt(set)
}

func (a *Analyzer) requestVerdict(ctx context.Context, place *types.Place, venueType types.VenueType, result types.MetricsResult, external types.ExternalOpinions, proximity types.ProximityInfo, calibration string) (*types.Analysis, error) {
	if a.openaiClient == nil {
		return nil, fmt.Errorf("openai client not configured")
	}

	prompt := buildPrompt(place, venueType, result, external, proximity, calibration)

	resp, err := a.openaiClient.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       openai.GPT4oMini,
			MaxTokens:   verdictMaxTokens,
			Temperature: 0.2,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("verdict completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("verdict completion returned no choices")
	}

	var analysis types.Analysis
	if err := parseVerdict(resp.Choices[0].Message.Content, &analysis); err != nil {
		return nil, fmt.Errorf("parse verdict: %w", err)
	}
	return &analysis, nil
}

// FormatAnalysis renders an analysis as a console report.
func FormatAnalysis(a *types.Analysis) string {
	var out []string
	divider := strings.Repeat("=", 70)

	out = append(out,
		divider,
		fmt.Sprintf("TOURIST TRAP ANALYSIS: %s", a.Meta.PlaceName),
		fmt.Sprintf("Rating: %.1f* | Reviews: %d", a.Meta.PlaceRating, a.Meta.PlaceReviewCount),
		divider,
		"",
		fmt.Sprintf("TRAP SCORE: %d/100 [%s]", a.TouristTrapScore, strings.ToUpper(a.Classification)),
		fmt.Sprintf("Confidence: %s", a.Confidence),
		fmt.Sprintf("Verdict: %s", a.Verdict),
		"",
	)

	if len(a.Signals) > 0 {
		out = append(out, "DETECTED SIGNALS:")
		for _, signal := range a.Signals {
			out = append(out, fmt.Sprintf("  [%s] %s: %s", strings.ToUpper(string(signal.Severity)), signal.Signal, signal.Detail))
		}
		out = append(out, "")
	}

	if len(a.KeyConcerns) > 0 {
		out = append(out, "KEY CONCERNS:")
		for _, c := range a.KeyConcerns {
			out = append(out,
				fmt.Sprintf("  - %s", c.Concern),
				fmt.Sprintf("    Evidence: %s", truncate(c.Evidence, 100)),
			)
		}
		out = append(out, "")
	}

	if len(a.MitigatingFactors) > 0 {
		out = append(out, "MITIGATING FACTORS:")
		for _, m := range a.MitigatingFactors {
			out = append(out, fmt.Sprintf("  + %s", m))
		}
		out = append(out, "")
	}

	out = append(out,
		fmt.Sprintf("RECOMMENDATION: %s", a.Recommendation),
		"",
		"ANALYSIS:",
		a.Reasoning,
	)
	if a.Meta.GoogleMapsURL != "" {
		out = append(out, "", fmt.Sprintf("Google Maps: %s", a.Meta.GoogleMapsURL))
	}
	return strings.Join(out, "\n")
}

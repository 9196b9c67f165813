// Package websearch asks the LLM collaborator for signals that live outside
// the review corpus: external opinions (Reddit, TripAdvisor forums, blogs)
// and how touristy the venue's surroundings are. Both calls degrade to a
// neutral payload on any failure so an outage never aborts an analysis.
package websearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	openai "github.com/sashabaranov/go-openai"

	"trapcheck/types"
)

// sourceHints tailors which communities and blogs the search prompt points
// at, per venue type.
var sourceHints = map[types.VenueType]string{
	types.VenueRestaurant: "r/travel, r/food, city subreddits, food blogger reviews",
	types.VenueMuseum:     "r/travel, r/museums, city subreddits, art and travel blogs",
	types.VenueAttraction: "r/travel, r/solotravel, city subreddits, destination blogs",
	types.VenueTour:       "r/travel, r/solotravel, city subreddits, tour review articles",
	types.VenueShop:       "r/travel, r/shopping, city subreddits, shopping guides",
	types.VenueGeneral:    "r/travel, city subreddits, travel blogs",
}

// SearchExternalOpinions looks for warnings and recommendations about the
// venue on outside platforms. The zero-value ExternalOpinions ("none"
// sentiments, zero counts) is returned on any error.
func SearchExternalOpinions(ctx context.Context, client *openai.Client, venueName, location string, venueType types.VenueType) types.ExternalOpinions {
	neutral := types.ExternalOpinions{
		RedditSentiment:      "none",
		TripadvisorSentiment: "none",
		BlogSentiment:        "none",
		Summary:              "No external opinion data available",
	}
	if client == nil {
		return neutral
	}

	hints, ok := sourceHints[venueType]
	if !ok {
		hints = sourceHints[types.VenueGeneral]
	}

	prompt := fmt.Sprintf(`Search your knowledge of discussions about "%s" in %s on %s.

For each source decide whether sentiment is positive, negative, mixed, or none,
whether there are warnings about it being a tourist trap or overpriced, and
whether locals or experienced travelers recommend it.

Respond with JSON only, in this exact structure:
{
  "external_warnings": <number of distinct warnings/negative mentions>,
  "external_recommendations": <number of distinct positive recommendations>,
  "reddit_sentiment": "<positive|negative|mixed|none>",
  "tripadvisor_sentiment": "<positive|negative|mixed|none>",
  "blog_sentiment": "<positive|negative|mixed|none>",
  "notable_quotes": ["<quote>", ...],
  "summary": "<2-3 sentence summary>"
}

Use "none" when you cannot find mentions on a platform. Never fabricate quotes.`,
		venueName, location, hints)

	var opinions types.ExternalOpinions
	if err := completeJSON(ctx, client, "You research traveler opinions about venues and answer with strict JSON.", prompt, &opinions); err != nil {
		log.WithError(err).Warn("external opinion search failed, using neutral payload")
		return neutral
	}
	return opinions
}

// CheckTouristProximity estimates whether the venue sits in a heavily
// touristed zone. The neutral fallback is a midpoint score of 50.
func CheckTouristProximity(ctx context.Context, client *openai.Client, venueName, address, location string) types.ProximityInfo {
	neutral := types.ProximityInfo{
		ProximityScore: 50,
		Reasoning:      "Unable to determine location characteristics",
	}
	if client == nil {
		return neutral
	}

	prompt := fmt.Sprintf(`Analyze the location of "%s" at %s, %s.

1. What major tourist attractions are within 500 meters of this address?
2. Is this area known as a heavily touristed zone?

Respond with JSON only, in this exact structure:
{
  "near_attractions": ["<attraction>", ...],
  "is_tourist_hotspot": <true|false>,
  "proximity_score": <0-100>,
  "reasoning": "<1-2 sentence explanation>"
}

Score guide: 0-30 residential/local neighborhood, 31-60 some tourist
activity, 61-80 popular tourist area, 81-100 major tourist destination
(within sight of famous landmarks).`, venueName, address, location)

	var proximity types.ProximityInfo
	if err := completeJSON(ctx, client, "You assess how touristy a location is and answer with strict JSON.", prompt, &proximity); err != nil {
		log.WithError(err).Warn("tourist proximity check failed, using neutral payload")
		return neutral
	}
	return proximity
}

// completeJSON runs a chat completion and unmarshals the first JSON object
// found in the reply into out.
func completeJSON(ctx context.Context, client *openai.Client, system, prompt string, out any) error {
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   1024,
		Temperature: 0.1,
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return errors.New("empty completion response")
	}
	return unmarshalLooseJSON(resp.Choices[0].Message.Content, out)
}

// unmarshalLooseJSON extracts the outermost JSON object from text that may
// be wrapped in prose or markdown fences.
func unmarshalLooseJSON(text string, out any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return errors.New("no JSON object in response")
	}
	return json.Unmarshal([]byte(text[start:end+1]), out)
}

// Package places talks to the Google-Maps-style place/review data source
// (SerpAPI) and normalizes its loosely-typed records into the internal
// Review and Place structures. Without an API key it falls back to the
// built-in mock dataset.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/apex/log"

	"trapcheck/types"
)

const (
	searchURL = "https://serpapi.com/search.json"

	sortRatingLow  = "ratingLow"
	sortRatingHigh = "ratingHigh"
)

type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a place/review client. An empty apiKey enables mock
// mode, where the built-in dataset is served instead of live requests.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// MockMode reports whether the client serves the built-in dataset.
func (c *Client) MockMode() bool {
	return c.apiKey == ""
}

type searchResponse struct {
	PlaceResults map[string]any   `json:"place_results"`
	LocalResults []map[string]any `json:"local_results"`
}

// SearchPlace finds a venue by name and optional location. Returns nil
// (no error) when nothing matches.
func (c *Client) SearchPlace(ctx context.Context, query, location string) (*types.Place, error) {
	if c.MockMode() {
		log.Warn("no SERPAPI_KEY configured, using mock place data")
		return mockPlace(query), nil
	}

	searchQuery := query
	if location != "" {
		searchQuery = query + " " + location
	}
	params := url.Values{}
	params.Set("engine", "google_maps")
	params.Set("q", searchQuery)
	params.Set("type", "search")
	params.Set("api_key", c.apiKey)

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("place search: %w", err)
	}

	var raw map[string]any
	if len(resp.PlaceResults) > 0 {
		raw = resp.PlaceResults
	} else if len(resp.LocalResults) > 0 {
		raw = resp.LocalResults[0]
	}
	if raw == nil {
		return nil, nil
	}
	place := NormalizePlace(raw)
	return &place, nil
}

type reviewsResponse struct {
	Reviews           []map[string]any `json:"reviews"`
	SerpapiPagination struct {
		NextPageToken string `json:"next_page_token"`
	} `json:"serpapi_pagination"`
}

// FetchStratifiedReviews fetches the lowest-rated and highest-rated review
// cohorts for a place. The two cohorts are kept disjoint by sort order so
// downstream comparisons between them stay meaningful.
func (c *Client) FetchStratifiedReviews(ctx context.Context, dataID string, perTier int) (reviewsLow, reviewsHigh []types.Review, err error) {
	if c.MockMode() {
		low, high := mockStratifiedReviews(dataID)
		return low, high, nil
	}

	reviewsLow, err = c.fetchReviews(ctx, dataID, sortRatingLow, perTier)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching low-rated reviews: %w", err)
	}
	reviewsHigh, err = c.fetchReviews(ctx, dataID, sortRatingHigh, perTier)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching high-rated reviews: %w", err)
	}
	return reviewsLow, reviewsHigh, nil
}

func (c *Client) fetchReviews(ctx context.Context, dataID, sortBy string, maxReviews int) ([]types.Review, error) {
	var reviews []types.Review
	nextPageToken := ""

	for len(reviews) < maxReviews {
		params := url.Values{}
		params.Set("engine", "google_maps_reviews")
		params.Set("data_id", dataID)
		params.Set("sort_by", sortBy)
		params.Set("api_key", c.apiKey)
		if nextPageToken != "" {
			params.Set("next_page_token", nextPageToken)
		}

		var resp reviewsResponse
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, err
		}
		if len(resp.Reviews) == 0 {
			break
		}

		for _, raw := range resp.Reviews {
			reviews = append(reviews, NormalizeReview(raw))
			if len(reviews) >= maxReviews {
				break
			}
		}

		nextPageToken = resp.SerpapiPagination.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	log.Infof("fetched %d reviews (sort=%s)", len(reviews), sortBy)
	return reviews, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("place data source returned status " + strconv.Itoa(resp.StatusCode))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

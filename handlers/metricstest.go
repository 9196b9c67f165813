package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trapcheck/metrics"
	"trapcheck/places"
	"trapcheck/types"
)

// MetricsTest runs the deterministic engine on reviews posted directly in
// the request body, without any place lookup. Reviews are accepted in the
// raw provider shape so callers can paste API responses as-is.
func MetricsTest(c *gin.Context, engine *metrics.Engine) {
	var request struct {
		VenueName   string           `json:"venue_name"`
		Categories  []string         `json:"categories"`
		VenueType   string           `json:"venue_type"`
		ReviewsLow  []map[string]any `json:"reviews_low"`
		ReviewsHigh []map[string]any `json:"reviews_high"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venueType := types.VenueType(request.VenueType)
	if venueType == "" {
		venueType = metrics.InferVenueType(request.VenueName, request.Categories)
	}

	reviewsLow := make([]types.Review, 0, len(request.ReviewsLow))
	for _, raw := range request.ReviewsLow {
		reviewsLow = append(reviewsLow, places.NormalizeReview(raw))
	}
	reviewsHigh := make([]types.Review, 0, len(request.ReviewsHigh))
	for _, raw := range request.ReviewsHigh {
		reviewsHigh = append(reviewsHigh, places.NormalizeReview(raw))
	}

	result := engine.Compute(reviewsLow, reviewsHigh, venueType)

	c.JSON(http.StatusOK, gin.H{
		"venue_type": venueType,
		"metrics":    result,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trapcheck/metrics"
	"trapcheck/places"
)

// Demo runs the metrics pipeline against the built-in mock place data, so
// the response shape can be inspected without API keys.
func Demo(c *gin.Context, engine *metrics.Engine) {
	mock := places.NewClient("")

	place, err := mock.SearchPlace(c.Request.Context(), "olive garden", "new york")
	if err != nil || place == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mock dataset unavailable"})
		return
	}

	reviewsLow, reviewsHigh, err := mock.FetchStratifiedReviews(c.Request.Context(), place.DataID, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	venueType := metrics.InferVenueType(place.Name, place.Categories)
	result := engine.Compute(reviewsLow, reviewsHigh, venueType)

	c.JSON(http.StatusOK, gin.H{
		"place":      place,
		"venue_type": venueType,
		"metrics":    result,
	})
}

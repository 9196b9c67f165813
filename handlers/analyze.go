package handlers

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"trapcheck/analyzer"
)

// AnalyzeVenue runs the full pipeline for the venue named in the request
// body and returns the verdict.
func AnalyzeVenue(c *gin.Context, a *analyzer.Analyzer) {
	var request struct {
		Query    string `json:"query" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := a.AnalyzeVenue(c.Request.Context(), request.Query, request.Location)
	if err != nil {
		log.WithError(err).WithField("query", request.Query).Error("venue analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

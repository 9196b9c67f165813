package routes

import (
	"github.com/gin-gonic/gin"

	"trapcheck/analyzer"
	"trapcheck/handlers"
	"trapcheck/metrics"
)

func SetupRouter(a *analyzer.Analyzer, engine *metrics.Engine) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to TrapCheck!",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// api routes
	api := r.Group("/api/trapcheck")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeVenue(c, a)
		})
		api.GET("/demo", func(c *gin.Context) {
			handlers.Demo(c, engine)
		})
		api.POST("/metrics-test", func(c *gin.Context) {
			handlers.MetricsTest(c, engine)
		})
	}

	return r
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	openai "github.com/sashabaranov/go-openai"

	"trapcheck/analyzer"
	"trapcheck/config"
	"trapcheck/cronjobs"
	"trapcheck/langdetect"
	"trapcheck/metrics"
	"trapcheck/places"
	"trapcheck/rag"
	"trapcheck/routes"
)

func main() {
	cfg := config.Load()

	if cfg.OpenAIAPIKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}
	if cfg.SerpAPIKey == "" {
		fmt.Println("SERPAPI_KEY not set, using mock place data")
	}
	fmt.Println("CLIENT_URL:", cfg.ClientURL)

	var openaiClient *openai.Client
	if cfg.OpenAIAPIKey != "" {
		openaiClient = openai.NewClient(cfg.OpenAIAPIKey)
	}

	placesClient := places.NewClient(cfg.SerpAPIKey)
	engine := metrics.NewEngine(langdetect.New())

	retriever, err := rag.NewRetriever(cfg.RAGDatabasePath)
	if err != nil {
		log.WithError(err).Warn("calibration database unavailable, continuing without it")
		retriever = nil
	} else {
		log.Infof("calibration database loaded, %d entries", retriever.Size())
	}

	a := analyzer.New(openaiClient, placesClient, engine, retriever, cfg.ReviewsPerTier)

	// CLI mode: trapcheck "<query>" ["<location>"]
	if len(os.Args) > 1 {
		query := os.Args[1]
		location := ""
		if len(os.Args) > 2 {
			location = os.Args[2]
		}

		analysis, err := a.AnalyzeVenue(context.Background(), query, location)
		if err != nil {
			log.WithError(err).Fatal("analysis failed")
		}
		fmt.Println(analyzer.FormatAnalysis(analysis))
		return
	}

	cronjobs.InitCronJobs(retriever)

	r := routes.SetupRouter(a, engine)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

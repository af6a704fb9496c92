package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"newslens/internal/pipeline"
	"newslens/pkg/extract"
	"newslens/pkg/llm"
	"newslens/pkg/news"

	"github.com/joho/godotenv"
)

// One-shot pipeline run from the command line: the result bundle goes
// to stdout as JSON, logs go to stderr.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	if len(os.Args) < 2 {
		log.Fatal("usage: research <query...>")
	}
	query := strings.Join(os.Args[1:], " ")

	agg := pipeline.New(pipeline.Deps{
		Searcher:  news.NewSerpAPIClient(os.Getenv("SERP_API_KEY")),
		Extractor: extract.NewReadabilityExtractor(),
		Model:     llm.NewGroqClient(os.Getenv("GROQ_API_KEY")),
	}, pipeline.Config{ProcessDelay: pipeline.DefaultProcessDelay})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result := agg.Run(ctx, query, "")
	if result.Err != "" {
		log.Fatalf("pipeline error: %s", result.Err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("error encoding result: %v", err)
	}

	fmt.Println(string(out))
}

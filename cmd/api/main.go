package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"newslens/db"
	"newslens/internal/handler"
	"newslens/internal/pipeline"
	"newslens/internal/repository"
	"newslens/pkg/extract"
	"newslens/pkg/llm"
	"newslens/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// redisResultCache adapts the db package's cache helpers to the
// handler's ResultCache interface.
type redisResultCache struct{}

func (redisResultCache) Key(query, contextText string) string {
	return db.ResultCacheKey(query, contextText)
}

func (redisResultCache) Get(key string) ([]byte, error) {
	return db.GetCachedResult(key)
}

func (redisResultCache) Set(key string, payload []byte, ttl time.Duration) error {
	return db.SetCachedResult(key, payload, ttl)
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var cache handler.ResultCache
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, running without result cache", "error", err)
	} else {
		cache = redisResultCache{}
		defer db.CloseRedis()
	}

	searcher := news.NewSerpAPIClient(os.Getenv("SERP_API_KEY"))
	extractor := extract.NewReadabilityExtractor()

	var modelClient llm.ModelClient
	var modelName string
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		client := llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
		modelClient, modelName = client, client.ModelName()
	} else {
		client := llm.NewGroqClient(os.Getenv("GROQ_API_KEY"))
		modelClient, modelName = client, client.ModelName()
	}

	agg := pipeline.New(pipeline.Deps{
		Searcher:  searcher,
		Extractor: extractor,
		Model:     modelClient,
	}, pipeline.Config{
		ProcessDelay: envDuration("PROCESS_DELAY_SECONDS", pipeline.DefaultProcessDelay, time.Second),
	})

	runRepo := repository.NewRunRepository(db.DB)
	cacheTTL := envDuration("CACHE_TTL_MINUTES", 30*time.Minute, time.Minute)

	researchHandler := handler.NewResearchHandler(agg, runRepo, cache, cacheTTL, modelName)
	assistHandler := handler.NewAssistHandler(modelClient, extractor)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/research", researchHandler.Research)
	r.GET("/research", researchHandler.GetRuns)
	r.GET("/research/:id", researchHandler.GetRun)
	r.POST("/followup", assistHandler.AnswerFollowup)
	r.POST("/summarize-url", assistHandler.SummarizeURL)
	r.GET("/health", researchHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func envDuration(name string, defaultValue, unit time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		slog.Warn("invalid duration env var, using default", "var", name, "value", raw)
		return defaultValue
	}
	return time.Duration(n) * unit
}

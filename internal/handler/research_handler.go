package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"newslens/internal/model"

	"github.com/gin-gonic/gin"
)

// ResearchPipeline is the aggregation pipeline as the handler sees it.
type ResearchPipeline interface {
	Run(ctx context.Context, query, contextText string) model.ResearchResult
}

type RunStore interface {
	SaveRun(run *model.ResearchRun) error
	GetRuns(limit, offset int) ([]model.ResearchRun, error)
	GetRunTotal() (int, error)
	GetRunByID(id int64) (*model.ResearchRun, error)
}

// ResultCache is the (query, context)-keyed cache for finished runs.
type ResultCache interface {
	Key(query, contextText string) string
	Get(key string) ([]byte, error)
	Set(key string, payload []byte, ttl time.Duration) error
}

type ResearchHandler struct {
	pipeline  ResearchPipeline
	store     RunStore
	cache     ResultCache
	cacheTTL  time.Duration
	modelUsed string
}

func NewResearchHandler(pipeline ResearchPipeline, store RunStore, cache ResultCache, cacheTTL time.Duration, modelUsed string) *ResearchHandler {
	return &ResearchHandler{
		pipeline:  pipeline,
		store:     store,
		cache:     cache,
		cacheTTL:  cacheTTL,
		modelUsed: modelUsed,
	}
}

func (h *ResearchHandler) Research(c *gin.Context) {
	var req ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be empty"})
		return
	}

	if h.cache != nil {
		key := h.cache.Key(req.Query, req.Context)
		payload, err := h.cache.Get(key)
		if err != nil {
			slog.Warn("result cache lookup failed", "error", err)
		}
		if payload != nil {
			var result model.ResearchResult
			if err := json.Unmarshal(payload, &result); err == nil {
				res := toResearchResponse(req.Query, result)
				res.Cached = true
				c.JSON(http.StatusOK, res)
				return
			}
			slog.Warn("discarding undecodable cached result", "key", key)
		}
	}

	result := h.pipeline.Run(c.Request.Context(), req.Query, req.Context)
	if result.Err != "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Err})
		return
	}

	if h.store != nil {
		run := &model.ResearchRun{
			Query:           req.Query,
			Context:         req.Context,
			CombinedSummary: result.CombinedSummary,
			ModelUsed:       h.modelUsed,
			Articles:        result.Articles,
			Perspectives:    result.Perspectives,
			Followups:       result.Followups,
		}
		if err := h.store.SaveRun(run); err != nil {
			// Archival is best effort; the result still goes out.
			slog.Error("error archiving research run", "query", req.Query, "error", err)
		}
	}

	if h.cache != nil {
		payload, err := json.Marshal(result)
		if err == nil {
			if err := h.cache.Set(h.cache.Key(req.Query, req.Context), payload, h.cacheTTL); err != nil {
				slog.Warn("result cache store failed", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, toResearchResponse(req.Query, result))
}

func (h *ResearchHandler) GetRuns(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	runs, err := h.store.GetRuns(limit, offset)
	if err != nil {
		slog.Error("error fetching runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.store.GetRunTotal()
	if err != nil {
		slog.Error("error fetching run total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := RunsResponse{
		Runs:   []RunResponse{},
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, run := range runs {
		res.Runs = append(res.Runs, toRunResponse(run))
	}

	c.JSON(http.StatusOK, res)
}

func (h *ResearchHandler) GetRun(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid run id"})
		return
	}

	run, err := h.store.GetRunByID(id)
	if err != nil {
		slog.Error("error fetching run", "run_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
		return
	}

	c.JSON(http.StatusOK, toRunResponse(*run))
}

func (h *ResearchHandler) GetHealth(c *gin.Context) {
	_, err := h.store.GetRunTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toResearchResponse(query string, result model.ResearchResult) ResearchResponse {
	res := ResearchResponse{
		Query:           query,
		CombinedSummary: result.CombinedSummary,
		Articles:        []ArticleResponse{},
		Perspectives:    []PerspectiveResponse{},
		Followups:       result.Followups,
	}
	if res.Followups == nil {
		res.Followups = []string{}
	}
	for _, a := range result.Articles {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}
	for _, p := range result.Perspectives {
		res.Perspectives = append(res.Perspectives, toPerspectiveResponse(p))
	}
	return res
}

func toRunResponse(run model.ResearchRun) RunResponse {
	res := RunResponse{
		ID:              run.ID,
		Query:           run.Query,
		CombinedSummary: run.CombinedSummary,
		ArticleCount:    run.ArticleCount,
		ModelUsed:       run.ModelUsed,
		CreatedAt:       run.CreatedAt.Format(time.RFC3339),
		Followups:       run.Followups,
	}
	for _, a := range run.Articles {
		res.Articles = append(res.Articles, toArticleResponse(a))
	}
	for _, p := range run.Perspectives {
		res.Perspectives = append(res.Perspectives, toPerspectiveResponse(p))
	}
	return res
}

func toArticleResponse(a model.ProcessedArticle) ArticleResponse {
	return ArticleResponse{
		Source:           a.Source,
		URL:              a.URL,
		Title:            a.Title,
		Summary:          a.Summary,
		CredibilityLabel: a.CredibilityLabel,
		CredibilityScore: a.CredibilityScore,
		PriorityRank:     a.PriorityRank,
		PriorityTier:     a.PriorityTier,
		Thumbnail:        a.Thumbnail,
	}
}

func toPerspectiveResponse(p model.Perspective) PerspectiveResponse {
	urls := p.SourceURLs
	if urls == nil {
		urls = []string{}
	}
	return PerspectiveResponse{
		Label:          p.Label,
		Narrative:      p.Narrative,
		SupportingFact: p.SupportingFact,
		SourceURLs:     urls,
	}
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}

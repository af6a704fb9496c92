package pipeline

import (
	"context"
	"log/slog"
	"time"

	"newslens/internal/model"
	"newslens/pkg/extract"
	"newslens/pkg/llm"
	"newslens/pkg/news"
)

// Terminal pipeline errors. Everything else degrades: fewer articles,
// an empty combined summary, no perspectives, no follow-ups.
const (
	MsgNoArticles    = "No articles found."
	MsgNoneProcessed = "Could not process any of the fetched articles."
)

// Deps wires the three external ports into the aggregator.
type Deps struct {
	Searcher  news.Searcher
	Extractor extract.Extractor
	Model     llm.ModelClient
}

// Config holds the pipeline's policy knobs. Zero counts fall back to
// the defaults; a ProcessDelay of 0 disables pacing entirely.
type Config struct {
	SearchLimit  int           // candidate over-fetch bound
	HeadlineCap  int           // max articles in the headline set
	FollowupCap  int           // max follow-up questions
	ProcessDelay time.Duration // pacing delay after each processed candidate
}

const (
	defaultSearchLimit = 15
	defaultHeadlineCap = 4
	defaultFollowupCap = 5

	// DefaultProcessDelay throttles outbound extraction/model calls.
	DefaultProcessDelay = 2 * time.Second
)

// Aggregator drives the full research pipeline: search, per-article
// processing, credibility ranking, synthesis, perspective extraction and
// follow-up generation.
type Aggregator struct {
	searcher  news.Searcher
	extractor extract.Extractor
	model     llm.ModelClient
	cfg       Config
}

func New(deps Deps, cfg Config) *Aggregator {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	if cfg.HeadlineCap <= 0 {
		cfg.HeadlineCap = defaultHeadlineCap
	}
	if cfg.FollowupCap <= 0 {
		cfg.FollowupCap = defaultFollowupCap
	}
	if cfg.ProcessDelay < 0 {
		cfg.ProcessDelay = 0
	}
	return &Aggregator{
		searcher:  deps.Searcher,
		extractor: deps.Extractor,
		model:     deps.Model,
		cfg:       cfg,
	}
}

// Run executes the pipeline for one query. contextText is prior
// conversation text; it only biases follow-up generation. The returned
// result carries either the success fields or a terminal error message,
// never both.
func (a *Aggregator) Run(ctx context.Context, query, contextText string) model.ResearchResult {
	items, err := a.searcher.Search(ctx, query, a.cfg.SearchLimit)
	if err != nil {
		slog.Error("news search failed", "provider", a.searcher.Name(), "query", query, "error", err)
		return model.ResearchResult{Err: err.Error()}
	}
	if len(items) == 0 {
		return model.ResearchResult{Err: MsgNoArticles}
	}

	proc := newProcessor(a.extractor, a.model, a.cfg.HeadlineCap, a.cfg.ProcessDelay)

	var headlines []model.ProcessedArticle
	var pool []model.PoolArticle
	for _, item := range items {
		out := proc.process(ctx, item, len(headlines))
		if out.article != nil {
			headlines = append(headlines, *out.article)
		} else if out.pool != nil {
			pool = append(pool, *out.pool)
		}
	}

	if len(headlines) == 0 {
		return model.ResearchResult{Err: MsgNoneProcessed}
	}

	ranked := rankByCredibility(headlines)

	summaries := make([]string, len(ranked))
	for i, art := range ranked {
		summaries[i] = art.Summary
	}

	// Synthesis failure is not fatal: the run still returns ranked
	// articles and perspectives, just no combined summary and therefore
	// no follow-ups.
	combined, err := a.model.Synthesize(ctx, summaries)
	if err != nil {
		slog.Warn("combined summary synthesis failed", "query", query, "error", err)
		combined = ""
	}

	perspectives := a.extractPerspectives(ctx, ranked, pool)

	followups := a.model.GenerateFollowups(ctx, combined, a.cfg.FollowupCap, contextText)
	followups = dedupeStrings(followups)
	if len(followups) > a.cfg.FollowupCap {
		followups = followups[:a.cfg.FollowupCap]
	}

	return model.ResearchResult{
		Articles:        ranked,
		CombinedSummary: combined,
		Followups:       followups,
		Perspectives:    perspectives,
	}
}

// extractPerspectives feeds the headline set plus the pool to the model:
// pool articles never display on their own but still widen the range of
// viewpoints.
func (a *Aggregator) extractPerspectives(ctx context.Context, ranked []model.ProcessedArticle, pool []model.PoolArticle) []model.Perspective {
	inputs := make([]llm.PerspectiveInput, 0, len(ranked)+len(pool))
	for _, art := range ranked {
		inputs = append(inputs, llm.PerspectiveInput{
			Source:  art.Source,
			Title:   art.Title,
			Summary: art.Summary,
			URL:     art.URL,
		})
	}
	for _, p := range pool {
		inputs = append(inputs, llm.PerspectiveInput{
			Source:  p.Source,
			Title:   p.Title,
			Summary: p.Summary,
			URL:     p.URL,
		})
	}

	extracted := a.model.ExtractPerspectives(ctx, inputs)

	perspectives := make([]model.Perspective, 0, len(extracted))
	for _, p := range extracted {
		perspectives = append(perspectives, model.Perspective{
			Label:          p.Label,
			Narrative:      p.Narrative,
			SupportingFact: p.SupportingFact,
			SourceURLs:     p.ArticleURLs,
		})
	}
	return perspectives
}

// dedupeStrings removes exact duplicates, keeping first-seen order.
func dedupeStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

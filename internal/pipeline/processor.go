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

// outcome is what processing one candidate produced: a headline article,
// a pool article, or nothing (rejected or duplicate source).
type outcome struct {
	article *model.ProcessedArticle
	pool    *model.PoolArticle
}

// processor turns candidates into outcomes for a single pipeline run.
// It keeps per-run state: which sources already produced an outcome.
type processor struct {
	extractor   extract.Extractor
	model       llm.ModelClient
	headlineCap int
	delay       time.Duration
	seen        map[string]bool
}

func newProcessor(extractor extract.Extractor, modelClient llm.ModelClient, headlineCap int, delay time.Duration) *processor {
	return &processor{
		extractor:   extractor,
		model:       modelClient,
		headlineCap: headlineCap,
		delay:       delay,
		seen:        map[string]bool{},
	}
}

// process handles one candidate. A source that already produced an
// outcome is skipped outright. Credibility is rated only while the
// headline set is still filling; later survivors go to the pool without
// a rating call.
func (p *processor) process(ctx context.Context, item news.Item, headlineCount int) outcome {
	if p.seen[item.SourceName] {
		return outcome{}
	}

	content, err := p.extractor.Extract(ctx, item.Link)
	if err != nil {
		slog.Info("skipping article: extraction failed", "source", item.SourceName, "url", item.Link, "error", err)
		return outcome{}
	}

	summary, err := p.model.Summarize(ctx, content.Text)
	if err != nil || summary == "" {
		slog.Info("skipping article: summarization failed", "source", item.SourceName, "url", item.Link, "error", err)
		return outcome{}
	}

	p.seen[item.SourceName] = true

	title := item.Title
	if title == "" {
		title = content.Title
	}
	thumbnail := item.Thumbnail
	if thumbnail == "" {
		thumbnail = content.Thumbnail
	}

	var out outcome
	if headlineCount < p.headlineCap {
		out.article = &model.ProcessedArticle{
			Source:           item.SourceName,
			URL:              item.Link,
			Title:            title,
			FullText:         content.Text,
			Summary:          summary,
			CredibilityLabel: p.model.RateCredibility(ctx, item.SourceName),
			Thumbnail:        thumbnail,
		}
	} else {
		out.pool = &model.PoolArticle{
			Source:  item.SourceName,
			URL:     item.Link,
			Title:   title,
			Summary: summary,
		}
	}

	// Pacing delay: throttles the extraction and model providers.
	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	return out
}

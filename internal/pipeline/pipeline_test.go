package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"newslens/internal/model"
	"newslens/pkg/extract"
	"newslens/pkg/llm"
	"newslens/pkg/news"

	"github.com/go-playground/assert/v2"
)

type fakeSearcher struct {
	items     []news.Item
	err       error
	nameCalls int
}

func (f *fakeSearcher) Search(ctx context.Context, query string, limit int) ([]news.Item, error) {
	return f.items, f.err
}

func (f *fakeSearcher) Name() string {
	f.nameCalls++
	return "fake"
}

// fakeExtractor serves canned text per URL; unknown URLs fail extraction.
type fakeExtractor struct {
	texts map[string]string
}

func (f *fakeExtractor) Extract(ctx context.Context, pageURL string) (*extract.Content, error) {
	text, ok := f.texts[pageURL]
	if !ok {
		return nil, extract.ErrNoContent
	}
	return &extract.Content{Text: text}, nil
}

type fakeModel struct {
	scores        map[string]string // source → credibility label
	failSummarize map[string]bool   // full text → fail
	synthesizeErr error
	followups     []string

	ratedSources      []string
	perspectiveInputs []llm.PerspectiveInput
}

func (f *fakeModel) Summarize(ctx context.Context, text string) (string, error) {
	if f.failSummarize[text] {
		return "", errors.New("summarization failed")
	}
	return "summary of " + text, nil
}

func (f *fakeModel) RateCredibility(ctx context.Context, source string) string {
	f.ratedSources = append(f.ratedSources, source)
	if label, ok := f.scores[source]; ok {
		return label
	}
	return "N/A"
}

func (f *fakeModel) Synthesize(ctx context.Context, summaries []string) (string, error) {
	if f.synthesizeErr != nil {
		return "", f.synthesizeErr
	}
	return fmt.Sprintf("combined view of %d summaries", len(summaries)), nil
}

func (f *fakeModel) ExtractPerspectives(ctx context.Context, inputs []llm.PerspectiveInput) []llm.Perspective {
	f.perspectiveInputs = inputs
	urls := make([]string, 0, len(inputs))
	for _, in := range inputs {
		urls = append(urls, in.URL)
	}
	return []llm.Perspective{{Label: "Catch-all", Narrative: "one view", ArticleURLs: urls}}
}

func (f *fakeModel) GenerateFollowups(ctx context.Context, summary string, n int, contextText string) []string {
	if summary == "" {
		return nil
	}
	return f.followups
}

func (f *fakeModel) AnswerFollowup(ctx context.Context, question, contextText string) (string, error) {
	return "answer", nil
}

func (f *fakeModel) ExtractKeywords(ctx context.Context, text string) (string, error) {
	return "keywords", nil
}

func candidate(source string, i int) news.Item {
	return news.Item{
		SourceName: source,
		Link:       fmt.Sprintf("https://%s.example/article-%d", source, i),
		Title:      fmt.Sprintf("Article %d from %s", i, source),
	}
}

func newTestAggregator(s *fakeSearcher, e *fakeExtractor, m *fakeModel) *Aggregator {
	return New(Deps{Searcher: s, Extractor: e, Model: m}, Config{ProcessDelay: 0})
}

func TestRunSearchErrorIsTerminal(t *testing.T) {
	s := &fakeSearcher{err: errors.New("provider unreachable")}
	res := newTestAggregator(s, &fakeExtractor{}, &fakeModel{}).Run(context.Background(), "q", "")

	assert.Equal(t, "provider unreachable", res.Err)
	assert.Equal(t, 0, len(res.Articles))
	// The failure report names the provider.
	assert.Equal(t, 1, s.nameCalls)
}

func TestRunNoCandidatesIsTerminal(t *testing.T) {
	s := &fakeSearcher{items: nil}
	res := newTestAggregator(s, &fakeExtractor{}, &fakeModel{}).Run(context.Background(), "q", "")

	assert.Equal(t, MsgNoArticles, res.Err)
}

func TestRunNoSurvivorsIsTerminalWithDistinctMessage(t *testing.T) {
	items := []news.Item{candidate("a", 1), candidate("b", 2)}
	s := &fakeSearcher{items: items}
	// No URLs are extractable, so every candidate is rejected.
	res := newTestAggregator(s, &fakeExtractor{texts: map[string]string{}}, &fakeModel{}).Run(context.Background(), "q", "")

	assert.Equal(t, MsgNoneProcessed, res.Err)
	assert.NotEqual(t, MsgNoArticles, res.Err)
}

func TestRunHeadlineCutoffCountsSuccessesNotAttempts(t *testing.T) {
	// Seven candidates: the first two fail extraction, the next five
	// succeed. The headline set must be the first four successes, with
	// the fifth success landing in the pool.
	items := make([]news.Item, 0, 7)
	texts := map[string]string{}
	for i := 1; i <= 7; i++ {
		c := candidate(fmt.Sprintf("src%d", i), i)
		items = append(items, c)
		if i > 2 {
			texts[c.Link] = fmt.Sprintf("text %d", i)
		}
	}

	m := &fakeModel{scores: map[string]string{}}
	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "q", "")

	assert.Equal(t, "", res.Err)
	assert.Equal(t, 4, len(res.Articles))

	sources := map[string]bool{}
	for _, a := range res.Articles {
		sources[a.Source] = true
	}
	for _, want := range []string{"src3", "src4", "src5", "src6"} {
		assert.Equal(t, true, sources[want])
	}

	// Credibility is rated only for headline articles, not pool ones.
	assert.Equal(t, 4, len(m.ratedSources))

	// The pool article still contributes to perspective extraction.
	assert.Equal(t, 5, len(m.perspectiveInputs))
}

func TestRunDedupBySourceKeepsEarlierItem(t *testing.T) {
	first := candidate("reuters", 1)
	second := candidate("reuters", 2)
	items := []news.Item{first, second}
	texts := map[string]string{
		first.Link:  "first text",
		second.Link: "second text",
	}

	m := &fakeModel{}
	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "q", "")

	assert.Equal(t, "", res.Err)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, first.Link, res.Articles[0].URL)
}

func TestRunDedupDoesNotBlockSourceWhoseFirstItemFailed(t *testing.T) {
	first := candidate("reuters", 1)
	second := candidate("reuters", 2)
	items := []news.Item{first, second}
	// Only the second item extracts; the failed first attempt must not
	// burn the source name.
	texts := map[string]string{second.Link: "second text"}

	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, &fakeModel{}).Run(context.Background(), "q", "")

	assert.Equal(t, "", res.Err)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, second.Link, res.Articles[0].URL)
}

func TestRunSynthesisFailureIsNotFatal(t *testing.T) {
	c := candidate("reuters", 1)
	items := []news.Item{c}
	texts := map[string]string{c.Link: "text"}

	m := &fakeModel{
		synthesizeErr: errors.New("model overloaded"),
		followups:     []string{"Why?"},
	}
	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "q", "")

	assert.Equal(t, "", res.Err)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "", res.CombinedSummary)
	// No combined summary means nothing to generate follow-ups from.
	assert.Equal(t, 0, len(res.Followups))
	// Perspectives still run.
	assert.Equal(t, 1, len(res.Perspectives))
}

func TestRunFollowupDedupPreservesOrder(t *testing.T) {
	c := candidate("reuters", 1)
	items := []news.Item{c}
	texts := map[string]string{c.Link: "text"}

	m := &fakeModel{followups: []string{"Why?", "Why?", "How?"}}
	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "q", "")

	assert.Equal(t, []string{"Why?", "How?"}, res.Followups)
}

func TestRunFollowupCountIsBounded(t *testing.T) {
	c := candidate("reuters", 1)
	items := []news.Item{c}
	texts := map[string]string{c.Link: "text"}

	m := &fakeModel{followups: []string{"Q1?", "Q2?", "Q3?", "Q4?", "Q5?", "Q6?", "Q7?"}}
	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "q", "")

	assert.Equal(t, 5, len(res.Followups))
}

// Perspective extraction can misattribute URLs in its catch-all fallback;
// that is a known precision tradeoff, so URL attribution is checked as a
// quality signal rather than a hard invariant.
func TestRunPerspectiveURLsComeFromProcessedArticles(t *testing.T) {
	items := []news.Item{candidate("a", 1), candidate("b", 2)}
	texts := map[string]string{
		items[0].Link: "text a",
		items[1].Link: "text b",
	}

	m := &fakeModel{}
	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "q", "")

	known := map[string]bool{items[0].Link: true, items[1].Link: true}
	for _, p := range res.Perspectives {
		for _, u := range p.SourceURLs {
			if !known[u] {
				t.Errorf("perspective cites unknown URL %q", u)
			}
		}
	}
}

func TestRunEndToEndScenario(t *testing.T) {
	// Six candidates across six sources, all processable. The first four
	// become headline articles with scores 90, 55, 55, 10; the last two
	// go to the perspective pool.
	items := make([]news.Item, 0, 6)
	texts := map[string]string{}
	for i := 1; i <= 6; i++ {
		c := candidate(fmt.Sprintf("src%d", i), i)
		items = append(items, c)
		texts[c.Link] = fmt.Sprintf("chip shortage text %d", i)
	}

	m := &fakeModel{
		scores: map[string]string{
			"src1": "90",
			"src2": "55",
			"src3": "55",
			"src4": "10",
		},
		followups: []string{"Q1?", "Q2?", "Q3?"},
	}

	res := newTestAggregator(&fakeSearcher{items: items}, &fakeExtractor{texts: texts}, m).Run(context.Background(), "chip shortage", "")

	assert.Equal(t, "", res.Err)
	assert.Equal(t, 4, len(res.Articles))

	wantSources := []string{"src1", "src2", "src3", "src4"}
	wantScores := []float64{90, 55, 55, 10}
	wantTiers := []string{model.TierHigh, model.TierLow, model.TierLow, model.TierVeryLow}
	for i, a := range res.Articles {
		assert.Equal(t, wantSources[i], a.Source)
		assert.Equal(t, wantScores[i], a.CredibilityScore)
		assert.Equal(t, wantTiers[i], a.PriorityTier)
		assert.Equal(t, i+1, a.PriorityRank)
	}

	// The two tied at 55 keep arrival order: src2 before src3.
	assert.Equal(t, "src2", res.Articles[1].Source)
	assert.Equal(t, "src3", res.Articles[2].Source)

	assert.NotEqual(t, "", res.CombinedSummary)
	assert.NotEqual(t, 0, len(res.Perspectives))
	assert.Equal(t, true, len(res.Followups) <= 5)

	// Remaining two articles fed perspectives via the pool.
	assert.Equal(t, 6, len(m.perspectiveInputs))
}

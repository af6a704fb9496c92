package llm

import "context"

// PerspectiveInput is one article handed to perspective extraction.
type PerspectiveInput struct {
	Source  string
	Title   string
	Summary string
	URL     string
}

// Perspective is one societal viewpoint the model found across articles.
type Perspective struct {
	Label          string
	Narrative      string
	SupportingFact string
	ArticleURLs    []string
}

// ModelClient is every language-model capability the research pipeline
// needs. RateCredibility, ExtractPerspectives and GenerateFollowups
// degrade instead of erroring: a failed call yields "N/A", a catch-all
// perspective, or no questions.
type ModelClient interface {
	Summarize(ctx context.Context, text string) (string, error)
	RateCredibility(ctx context.Context, source string) string
	Synthesize(ctx context.Context, summaries []string) (string, error)
	ExtractPerspectives(ctx context.Context, inputs []PerspectiveInput) []Perspective
	GenerateFollowups(ctx context.Context, summary string, n int, contextText string) []string
	AnswerFollowup(ctx context.Context, question, contextText string) (string, error)
	ExtractKeywords(ctx context.Context, text string) (string, error)
}

// completer is the single-call surface a provider has to offer; the
// operation helpers in ops.go build on it.
type completer interface {
	complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error)
}

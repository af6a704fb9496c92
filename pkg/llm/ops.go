package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input size caps keep prompts inside the model's context budget.
const (
	maxArticleChars  = 3000
	maxSnippetChars  = 600
	maxCombinedChars = 4000
	maxSummaryChars  = 2000
	maxContextChars  = 3000
)

// clip truncates s to at most max bytes without splitting a rune.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func summarizeOp(ctx context.Context, c completer, text string) (string, error) {
	safe := clip(strings.ReplaceAll(strings.TrimSpace(text), "\n", " "), maxArticleChars)

	out, err := c.complete(ctx, summarizeSystemPrompt, fmt.Sprintf(summarizeUserPrompt, safe), 0.1, 200)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// rateCredibilityOp never errors: any failure becomes the "N/A" label.
func rateCredibilityOp(ctx context.Context, c completer, source string) string {
	out, err := c.complete(ctx, "", fmt.Sprintf(credibilityUserPrompt, source), 0.0, 6)
	if err != nil {
		return "N/A"
	}

	raw := strings.TrimSpace(out)
	var digits strings.Builder
	for _, ch := range raw {
		if unicode.IsDigit(ch) {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() > 0 {
		return digits.String()
	}
	if raw == "" {
		return "N/A"
	}
	return raw
}

func synthesizeOp(ctx context.Context, c completer, summaries []string) (string, error) {
	snippets := make([]string, 0, len(summaries))
	for _, s := range summaries {
		s = clip(strings.TrimSpace(s), maxSnippetChars)
		if s != "" {
			snippets = append(snippets, s)
		}
	}
	if len(snippets) == 0 {
		return "", fmt.Errorf("synthesize: no summaries to combine")
	}
	combined := clip(strings.Join(snippets, "\n\n"), maxCombinedChars)

	out, err := c.complete(ctx, synthesizeSystemPrompt, fmt.Sprintf(synthesizeUserPrompt, combined), 0.1, 600)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// extractPerspectivesOp degrades instead of erroring: a failed call yields
// no perspectives, a malformed response yields a single catch-all one.
func extractPerspectivesOp(ctx context.Context, c completer, inputs []PerspectiveInput) []Perspective {
	if len(inputs) == 0 {
		return nil
	}

	snippets := make([]string, 0, len(inputs))
	urls := make([]string, 0, len(inputs))
	for _, in := range inputs {
		snippets = append(snippets, fmt.Sprintf("Source: %s\nTitle: %s\nSummary: %s\nURL: %s",
			in.Source, in.Title, in.Summary, in.URL))
		if in.URL != "" {
			urls = append(urls, in.URL)
		}
	}

	out, err := c.complete(ctx, perspectivesSystemPrompt,
		fmt.Sprintf(perspectivesUserPrompt, strings.Join(snippets, "\n\n---\n\n")), 0.1, 1200)
	if err != nil {
		return nil
	}

	return parsePerspectives(out, urls)
}

func generateFollowupsOp(ctx context.Context, c completer, summary string, n int, contextText string) []string {
	if summary == "" {
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, followupsUserPrompt, n)
	if contextText != "" {
		fmt.Fprintf(&sb, "Previous conversation context:\n%s\n\n", contextText)
	}
	fmt.Fprintf(&sb, "News summary:\n%s", clip(summary, maxSummaryChars))

	out, err := c.complete(ctx, followupsSystemPrompt, sb.String(), 0.2, 250)
	if err != nil {
		return nil
	}

	questions := parseQuestionList(out)
	if len(questions) > n {
		questions = questions[:n]
	}
	return questions
}

func answerFollowupOp(ctx context.Context, c completer, question, contextText string) (string, error) {
	var sb strings.Builder
	sb.WriteString(answerUserPrompt)
	if contextText != "" {
		fmt.Fprintf(&sb, "Available context:\n%s\n\n", clip(contextText, maxContextChars))
	}
	fmt.Fprintf(&sb, "Question: %s", question)

	out, err := c.complete(ctx, answerSystemPrompt, sb.String(), 0.05, 600)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func extractKeywordsOp(ctx context.Context, c completer, text string) (string, error) {
	out, err := c.complete(ctx, keywordsSystemPrompt, fmt.Sprintf(keywordsUserPrompt, text), 0.05, 40)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

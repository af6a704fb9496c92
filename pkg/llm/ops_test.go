package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"
)

type fakeCompleter struct {
	response string
	err      error
	lastUser string
}

func (f *fakeCompleter) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	f.lastUser = user
	return f.response, f.err
}

func TestRateCredibilityExtractsDigits(t *testing.T) {
	c := &fakeCompleter{response: "The score is 87."}
	assert.Equal(t, "87", rateCredibilityOp(context.Background(), c, "Reuters"))
}

func TestRateCredibilityFailureIsNA(t *testing.T) {
	c := &fakeCompleter{err: errors.New("rate limited")}
	assert.Equal(t, "N/A", rateCredibilityOp(context.Background(), c, "Reuters"))
}

func TestRateCredibilityNoDigitsKeepsRaw(t *testing.T) {
	c := &fakeCompleter{response: "unknown"}
	assert.Equal(t, "unknown", rateCredibilityOp(context.Background(), c, "Some Blog"))
}

func TestClipDoesNotSplitRunes(t *testing.T) {
	// A two-byte rune straddles the cap; truncation must back up to the
	// rune boundary instead of emitting half of it.
	s := strings.Repeat("a", 2999) + "é"

	got := clip(s, 3000)

	assert.Equal(t, strings.Repeat("a", 2999), got)
	assert.Equal(t, true, utf8.ValidString(got))

	assert.Equal(t, "héllo", clip("héllo", 10))
}

func TestSummarizeTruncatesInput(t *testing.T) {
	c := &fakeCompleter{response: "short summary"}

	long := strings.Repeat("word ", 2000)
	got, err := summarizeOp(context.Background(), c, long)

	assert.Equal(t, nil, err)
	assert.Equal(t, "short summary", got)
	assert.Equal(t, true, len(c.lastUser) < len(long))
}

func TestSynthesizeRejectsEmptyInput(t *testing.T) {
	c := &fakeCompleter{response: "unused"}

	_, err := synthesizeOp(context.Background(), c, []string{"", "  "})

	assert.NotEqual(t, nil, err)
}

func TestGenerateFollowupsEmptySummary(t *testing.T) {
	c := &fakeCompleter{response: "1. Should not be called?"}
	got := generateFollowupsOp(context.Background(), c, "", 5, "")
	assert.Equal(t, 0, len(got))
}

func TestGenerateFollowupsBoundsCount(t *testing.T) {
	c := &fakeCompleter{response: "1. Why did supply recover?\n2. How long will it last?\n3. What regions added capacity?"}

	got := generateFollowupsOp(context.Background(), c, "some summary", 2, "")

	assert.Equal(t, 2, len(got))
}

func TestExtractPerspectivesFailureReturnsNone(t *testing.T) {
	c := &fakeCompleter{err: errors.New("boom")}

	got := extractPerspectivesOp(context.Background(), c, []PerspectiveInput{
		{Source: "Reuters", Summary: "s", URL: "https://a.example/1"},
	})

	assert.Equal(t, 0, len(got))
}

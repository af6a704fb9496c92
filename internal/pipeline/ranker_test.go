package pipeline

import (
	"testing"

	"newslens/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestParseCredibilityScore(t *testing.T) {
	tests := []struct {
		label string
		want  float64
	}{
		{"73", 73.0},
		{"73%", 73.0},
		{" 73 % ", 73.0},
		{"73.5%", 73.5},
		{"abc", 0.0},
		{"N/A", 0.0},
		{"", 0.0},
		{"-10", 0.0},
		{"150", 100.0},
	}

	for _, tt := range tests {
		got := parseCredibilityScore(tt.label)
		if got != tt.want {
			t.Errorf("parseCredibilityScore(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, model.TierVeryLow},
		{39.9, model.TierVeryLow},
		{40, model.TierLow},
		{59.9, model.TierLow},
		{60, model.TierMedium},
		{79.9, model.TierMedium},
		{80, model.TierHigh},
		{100, model.TierHigh},
	}

	for _, tt := range tests {
		got := tierForScore(tt.score)
		if got != tt.want {
			t.Errorf("tierForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRankByCredibilityStableOnTies(t *testing.T) {
	articles := []model.ProcessedArticle{
		{Source: "first-55", CredibilityLabel: "55"},
		{Source: "the-90", CredibilityLabel: "90%"},
		{Source: "second-55", CredibilityLabel: "55"},
		{Source: "unrated", CredibilityLabel: "N/A"},
	}

	ranked := rankByCredibility(articles)

	assert.Equal(t, "the-90", ranked[0].Source)
	assert.Equal(t, "first-55", ranked[1].Source)
	assert.Equal(t, "second-55", ranked[2].Source)
	assert.Equal(t, "unrated", ranked[3].Source)

	for i, a := range ranked {
		assert.Equal(t, i+1, a.PriorityRank)
	}

	assert.Equal(t, model.TierHigh, ranked[0].PriorityTier)
	assert.Equal(t, model.TierLow, ranked[1].PriorityTier)
	assert.Equal(t, model.TierVeryLow, ranked[3].PriorityTier)
	assert.Equal(t, 0.0, ranked[3].CredibilityScore)
}

func TestRankByCredibilityDoesNotMutateInput(t *testing.T) {
	articles := []model.ProcessedArticle{
		{Source: "a", CredibilityLabel: "10"},
		{Source: "b", CredibilityLabel: "90"},
	}

	rankByCredibility(articles)

	assert.Equal(t, "a", articles[0].Source)
	assert.Equal(t, 0, articles[0].PriorityRank)
}

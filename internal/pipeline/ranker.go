package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"newslens/internal/model"
)

// parseCredibilityScore coerces a model-produced label ("87", "73%",
// "N/A") to a numeric score. Anything unparseable is 0; parseable values
// are clamped into [0, 100].
func parseCredibilityScore(label string) float64 {
	s := strings.TrimSpace(label)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	score, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	if score < 0 {
		return 0.0
	}
	if score > 100 {
		return 100.0
	}
	return score
}

func tierForScore(score float64) string {
	switch {
	case score >= 80:
		return model.TierHigh
	case score >= 60:
		return model.TierMedium
	case score >= 40:
		return model.TierLow
	default:
		return model.TierVeryLow
	}
}

// rankByCredibility orders articles by numeric credibility, highest
// first, and attaches rank and tier. The sort is stable: ties keep their
// arrival order, which reflects search relevance.
func rankByCredibility(articles []model.ProcessedArticle) []model.ProcessedArticle {
	ranked := make([]model.ProcessedArticle, len(articles))
	copy(ranked, articles)

	for i := range ranked {
		ranked[i].CredibilityScore = parseCredibilityScore(ranked[i].CredibilityLabel)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CredibilityScore > ranked[j].CredibilityScore
	})

	for i := range ranked {
		ranked[i].PriorityRank = i + 1
		ranked[i].PriorityTier = tierForScore(ranked[i].CredibilityScore)
	}

	return ranked
}

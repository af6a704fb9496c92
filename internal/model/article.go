package model

// Priority tiers derived from the numeric credibility score.
const (
	TierHigh    = "High"
	TierMedium  = "Medium"
	TierLow     = "Low"
	TierVeryLow = "Very-Low"
)

// ProcessedArticle is a headline-set article: extracted, summarized and
// credibility-rated. Rank and tier are attached by the ranker.
type ProcessedArticle struct {
	Source           string  `json:"source"`
	URL              string  `json:"url"`
	Title            string  `json:"title"`
	FullText         string  `json:"-"`
	Summary          string  `json:"summary"`
	CredibilityLabel string  `json:"credibility_label"`
	CredibilityScore float64 `json:"credibility_score"`
	PriorityRank     int     `json:"priority_rank"`
	PriorityTier     string  `json:"priority_tier"`
	Thumbnail        string  `json:"thumbnail,omitempty"`
}

// PoolArticle is a summarized article that arrived after the headline
// cutoff. It feeds synthesis and perspective extraction but is never
// displayed on its own.
type PoolArticle struct {
	Source  string `json:"source"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Perspective is one societal viewpoint inferred across the articles.
type Perspective struct {
	Label          string   `json:"label"`
	Narrative      string   `json:"narrative"`
	SupportingFact string   `json:"supporting_fact"`
	SourceURLs     []string `json:"source_urls"`
}

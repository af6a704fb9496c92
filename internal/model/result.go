package model

import "time"

// ResearchResult is the pipeline's terminal value. Err is empty on
// success; on failure every other field is zero.
type ResearchResult struct {
	Articles        []ProcessedArticle `json:"articles"`
	CombinedSummary string             `json:"combined_summary"`
	Followups       []string           `json:"followups"`
	Perspectives    []Perspective      `json:"perspectives"`
	Err             string             `json:"error,omitempty"`
}

// ResearchRun is an archived pipeline run.
type ResearchRun struct {
	ID              int64
	Query           string
	Context         string
	CombinedSummary string
	ArticleCount    int
	ModelUsed       string
	CreatedAt       time.Time
	Articles        []ProcessedArticle
	Perspectives    []Perspective
	Followups       []string
}

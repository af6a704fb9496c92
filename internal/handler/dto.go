package handler

type ResearchRequest struct {
	Query   string `json:"query"`
	Context string `json:"context"`
}

type ArticleResponse struct {
	Source           string  `json:"source"`
	URL              string  `json:"url"`
	Title            string  `json:"title"`
	Summary          string  `json:"summary"`
	CredibilityLabel string  `json:"credibility_label"`
	CredibilityScore float64 `json:"credibility_score"`
	PriorityRank     int     `json:"priority_rank"`
	PriorityTier     string  `json:"priority_tier"`
	Thumbnail        string  `json:"thumbnail,omitempty"`
}

type PerspectiveResponse struct {
	Label          string   `json:"label"`
	Narrative      string   `json:"narrative"`
	SupportingFact string   `json:"supporting_fact"`
	SourceURLs     []string `json:"source_urls"`
}

type ResearchResponse struct {
	Query           string                `json:"query"`
	CombinedSummary string                `json:"combined_summary"`
	Articles        []ArticleResponse     `json:"articles"`
	Perspectives    []PerspectiveResponse `json:"perspectives"`
	Followups       []string              `json:"followups"`
	Cached          bool                  `json:"cached"`
}

type RunResponse struct {
	ID              int64                 `json:"id"`
	Query           string                `json:"query"`
	CombinedSummary string                `json:"combined_summary"`
	ArticleCount    int                   `json:"article_count"`
	ModelUsed       string                `json:"model_used"`
	CreatedAt       string                `json:"created_at"`
	Articles        []ArticleResponse     `json:"articles,omitempty"`
	Perspectives    []PerspectiveResponse `json:"perspectives,omitempty"`
	Followups       []string              `json:"followups,omitempty"`
}

type RunsResponse struct {
	Runs   []RunResponse `json:"runs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type FollowupRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type FollowupResponse struct {
	Answer string `json:"answer"`
}

type SummarizeURLRequest struct {
	URL string `json:"url"`
}

type SummarizeURLResponse struct {
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Keywords string `json:"keywords"`
}

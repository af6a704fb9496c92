package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Outlets the refined first-pass query is biased toward.
const trustedSites = "site:bbc.com OR site:cnn.com OR site:reuters.com OR site:theguardian.com OR " +
	"site:cnbc.com OR site:apnews.com OR site:aljazeera.com OR site:npr.org OR " +
	"site:cbsnews.com OR site:abcnews.go.com OR site:nbcnews.com OR site:usatoday.com OR " +
	"site:politico.com OR site:foxnews.com"

type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey:     apiKey,
		baseURL:    "https://serpapi.com/search.json",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SerpAPIClient) Name() string {
	return "SerpAPI"
}

// Search runs a google_news query. It first tries a query restricted to a
// curated list of trusted outlets, then retries once with the plain query.
// An error is returned only when both attempts come back empty.
func (c *SerpAPIClient) Search(ctx context.Context, query string, limit int) ([]Item, error) {
	refined := fmt.Sprintf("%s (%s)", query, trustedSites)

	items, _ := c.fetch(ctx, refined, limit)
	if len(items) > 0 {
		return items, nil
	}

	items, err := c.fetch(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *SerpAPIClient) fetch(ctx context.Context, query string, limit int) ([]Item, error) {
	params := url.Values{}
	params.Set("engine", "google_news")
	params.Set("q", query)
	params.Set("gl", "us")
	params.Set("hl", "en")
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serpapi decode: %w", err)
	}

	if len(raw.NewsResults) == 0 {
		if raw.Error != "" {
			return nil, fmt.Errorf("serpapi: %s", raw.Error)
		}
		return nil, fmt.Errorf("serpapi: no news_results found")
	}

	results := raw.NewsResults
	if len(results) > limit {
		results = results[:limit]
	}

	items := make([]Item, 0, len(results))
	for _, r := range results {
		name := r.Source.Name
		if name == "" {
			name = "Unknown Source"
		}
		items = append(items, Item{
			SourceName: name,
			Link:       r.Link,
			Title:      r.Title,
			Thumbnail:  r.Thumbnail,
		})
	}

	return items, nil
}

type serpAPIResponse struct {
	NewsResults []serpAPINewsResult `json:"news_results"`
	Error       string              `json:"error"`
}

type serpAPINewsResult struct {
	Title     string        `json:"title"`
	Link      string        `json:"link"`
	Thumbnail string        `json:"thumbnail"`
	Source    serpAPISource `json:"source"`
}

type serpAPISource struct {
	Name string `json:"name"`
}

package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// ErrNoContent means the page was reachable but had no extractable
// article body. Distinct from transport errors so callers can tell
// "nothing there" from "couldn't reach it".
var ErrNoContent = errors.New("no extractable article content")

// Content is the best-effort main content of a page.
type Content struct {
	Text      string
	Title     string
	Thumbnail string
}

type Extractor interface {
	Extract(ctx context.Context, pageURL string) (*Content, error)
}

type ReadabilityExtractor struct {
	httpClient *http.Client
}

func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// Extract downloads the page and distills its main text. The thumbnail
// comes from the page's og:image meta tag when present.
func (e *ReadabilityExtractor) Extract(ctx context.Context, pageURL string) (*Content, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract parse url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("extract request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extract fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extract fetch: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("extract read body: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(body)), parsedURL)
	if err != nil {
		return nil, ErrNoContent
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, ErrNoContent
	}

	return &Content{
		Text:      text,
		Title:     strings.TrimSpace(article.Title),
		Thumbnail: findOGImage(body),
	}, nil
}

func findOGImage(html []byte) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		return ""
	}
	img, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	return img
}

package extract

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Chip Shortage Eases as Fabs Come Online</title>
<meta property="og:image" content="https://example.com/thumb.jpg">
</head>
<body>
<article>
<h1>Chip Shortage Eases as Fabs Come Online</h1>
<p>Global semiconductor supply improved this quarter as three new fabrication
plants reached volume production, according to industry analysts. Lead times
for automotive-grade chips fell to fourteen weeks from a peak of forty.</p>
<p>Carmakers that idled assembly lines last year have resumed full shifts,
though executives cautioned that demand for advanced nodes still outstrips
capacity. Analysts expect pricing pressure to persist through next year.</p>
<p>Government subsidy programs in several regions accelerated construction
timelines, and two additional plants are scheduled to open within a year,
which should further relieve the constraint on mature process nodes.</p>
</article>
</body>
</html>`

func TestExtractArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	e := &ReadabilityExtractor{httpClient: &http.Client{Timeout: 5 * time.Second}}

	content, err := e.Extract(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(content.Text, "semiconductor supply improved"))
	assert.Equal(t, "https://example.com/thumb.jpg", content.Thumbnail)
}

func TestExtractNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Empty</title></head><body></body></html>`))
	}))
	defer srv.Close()

	e := &ReadabilityExtractor{httpClient: &http.Client{Timeout: 5 * time.Second}}

	content, err := e.Extract(context.Background(), srv.URL)

	assert.Equal(t, true, errors.Is(err, ErrNoContent))
	assert.Equal(t, (*Content)(nil), content)
}

func TestExtractHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	e := &ReadabilityExtractor{httpClient: &http.Client{Timeout: 5 * time.Second}}

	_, err := e.Extract(context.Background(), srv.URL)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, errors.Is(err, ErrNoContent))
}

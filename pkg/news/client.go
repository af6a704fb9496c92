package news

import "context"

// Item is one raw search result, before any extraction or summarization.
type Item struct {
	SourceName string
	Link       string
	Title      string
	Thumbnail  string
}

type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]Item, error)
	Name() string
}

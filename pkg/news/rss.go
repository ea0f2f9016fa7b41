package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newsdigest/internal/textclean"

	"github.com/mmcdole/gofeed"
)

type RSSClient struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewRSSClient(feedURL string, timeout time.Duration) *RSSClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "newsdigest/1.0"

	return &RSSClient{
		feedURL: feedURL,
		parser:  parser,
	}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

// Fetch returns the first limit entries of the feed with their bodies cleaned.
// An empty feed yields ErrNoEntries.
func (c *RSSClient) Fetch(limit int) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.feedURL, context.Background())
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}

	if len(feed.Items) == 0 {
		return nil, ErrNoEntries
	}

	items := feed.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	articles := make([]Article, 0, len(items))
	for _, item := range items {
		a := Article{
			Headline: item.Title,
			Detail:   textclean.Clean(itemBody(item)),
			URL:      item.Link,
		}

		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}

		articles = append(articles, a)
	}

	return articles, nil
}

func itemBody(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}
	return item.Content
}

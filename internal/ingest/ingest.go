// Package ingest loads articles into the store at startup, falling back to
// fixed sample rows when the feed is unavailable.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"

	"newsdigest/internal/model"
	"newsdigest/pkg/news"
)

const DefaultLimit = 10

type Store interface {
	ReplaceAll(articles []model.Article) error
	SeedIfEmpty(articles []model.Article) (bool, error)
	Count() (int, error)
}

type Outcome string

const (
	OutcomeFetched   Outcome = "fetched"
	OutcomeSeeded    Outcome = "seeded"
	OutcomeUnchanged Outcome = "unchanged"
)

type Report struct {
	Outcome Outcome
	Source  string
	Saved   int
	Total   int
}

type Service struct {
	client news.NewsClient
	store  Store
	limit  int
}

func NewService(client news.NewsClient, store Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{client: client, store: store, limit: limit}
}

// Run fetches the feed once. Fetched entries replace every stored article;
// when the fetch fails the sample articles are inserted only into an empty store.
func (s *Service) Run() (*Report, error) {
	source := s.client.Name()
	report := &Report{Source: source}

	fetched, err := s.client.Fetch(s.limit)
	if err == nil && len(fetched) == 0 {
		err = news.ErrNoEntries
	}

	if err == nil {
		articles := toArticles(fetched, s.limit)
		if err := s.store.ReplaceAll(articles); err != nil {
			return nil, fmt.Errorf("replace articles: %w", err)
		}
		report.Outcome = OutcomeFetched
		report.Saved = len(articles)
	} else {
		if errors.Is(err, news.ErrNoEntries) {
			slog.Warn("feed returned no entries", "source", source)
		} else {
			slog.Warn("error fetching feed, using local data", "source", source, "error", err)
		}

		seeded, err := s.store.SeedIfEmpty(SampleArticles())
		if err != nil {
			return nil, fmt.Errorf("seed articles: %w", err)
		}

		report.Outcome = OutcomeUnchanged
		if seeded {
			report.Outcome = OutcomeSeeded
			report.Saved = len(SampleArticles())
		}
	}

	total, err := s.store.Count()
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	report.Total = total

	slog.Info("ingest complete", "source", source, "outcome", report.Outcome, "saved", report.Saved, "total", report.Total)
	return report, nil
}

func toArticles(fetched []news.Article, limit int) []model.Article {
	if len(fetched) > limit {
		fetched = fetched[:limit]
	}

	articles := make([]model.Article, 0, len(fetched))
	for _, a := range fetched {
		slog.Debug("fetched article", "headline", a.Headline, "url", a.URL, "published_at", a.PublishedAt)
		articles = append(articles, model.Article{
			Title:   a.Headline,
			Content: a.Detail,
		})
	}
	return articles
}

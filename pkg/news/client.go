package news

import (
	"errors"
	"time"
)

var ErrNoEntries = errors.New("feed returned no entries")

type Article struct {
	Headline    string
	Detail      string
	URL         string
	PublishedAt time.Time
}

type NewsClient interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}

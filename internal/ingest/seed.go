package ingest

import "newsdigest/internal/model"

// SampleArticles are stored when the feed cannot be reached and the store is empty.
func SampleArticles() []model.Article {
	return []model.Article{
		{Title: "Local Economy Growth", Content: "The local economy has shown signs of growth with new businesses opening."},
		{Title: "Community Event", Content: "A community event was held downtown with hundreds of people attending."},
		{Title: "Tech Innovation", Content: "Local startups are focusing on AI-driven solutions to improve daily life."},
	}
}

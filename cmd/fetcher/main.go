package main

import (
	"log"
	"log/slog"
	"os"
	"newsdigest/db"
	"newsdigest/internal/config"
	"newsdigest/internal/ingest"
	"newsdigest/internal/repository"
	"newsdigest/pkg/news"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load(os.Getenv("NEWSDIGEST_CONFIG"))
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	conn, err := db.Open(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	repo := repository.NewArticleRepository(conn)
	client := news.NewRSSClient(cfg.Feed.URL, cfg.FeedTimeout())

	report, err := ingest.NewService(client, repo, cfg.Feed.Limit).Run()
	if err != nil {
		log.Fatalf("error loading articles: %v", err)
	}

	slog.Info("fetch complete", "source", report.Source, "outcome", report.Outcome, "saved", report.Saved, "total", report.Total)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"newsdigest/db"
	"newsdigest/internal/config"
	"newsdigest/internal/repository"
	"newsdigest/internal/summarizer"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	id := flag.Int64("id", 0, "article id to summarize")
	sentences := flag.Int("sentences", 0, "number of sentences (defaults to config)")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("NEWSDIGEST_CONFIG"))
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if *id <= 0 {
		log.Fatalf("an article id is required, use -id")
	}

	n := cfg.Summarizer.Sentences
	if *sentences > 0 {
		n = *sentences
	}

	conn, err := db.Open(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	repo := repository.NewArticleRepository(conn)

	article, err := repo.GetByID(*id)
	if err != nil {
		log.Fatalf("error fetching article: %v", err)
	}

	if article == nil {
		conn.Close()
		log.Fatalf("article %d not found", *id)
	}

	engine, err := summarizer.NewEngine(cfg.Summarizer)
	if err != nil {
		log.Fatalf("error creating summarizer: %v", err)
	}

	result := engine.Summarize(article.Content, n)
	if result.Failed() {
		slog.Error("error summarizing article", "error", result.Err, "article_id", article.ID)
	}

	fmt.Printf("%s\n\n%s\n", article.Title, result.Message())
}

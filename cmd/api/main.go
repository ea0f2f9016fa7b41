package main

import (
	"log"
	"log/slog"
	"os"
	"newsdigest/db"
	"newsdigest/internal/config"
	"newsdigest/internal/handler"
	"newsdigest/internal/ingest"
	"newsdigest/internal/repository"
	"newsdigest/internal/summarizer"
	"newsdigest/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load(os.Getenv("NEWSDIGEST_CONFIG"))
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	conn, err := db.Open(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	articleRepo := repository.NewArticleRepository(conn)

	client := news.NewRSSClient(cfg.Feed.URL, cfg.FeedTimeout())
	if _, err := ingest.NewService(client, articleRepo, cfg.Feed.Limit).Run(); err != nil {
		log.Fatalf("error loading articles: %v", err)
	}

	engine, err := summarizer.NewEngine(cfg.Summarizer)
	if err != nil {
		log.Fatalf("error creating summarizer: %v", err)
	}

	newsHandler := handler.NewNewsHandler(articleRepo, engine, cfg.Summarizer.Sentences)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", newsHandler.Home)
	r.GET("/favicon.ico", newsHandler.Favicon)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/summarize/:id", newsHandler.Summarize)
	r.GET("/health", newsHandler.GetHealth)

	slog.Info("starting server", "addr", cfg.Addr(), "summarizer", cfg.Summarizer.Backend)

	err = r.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

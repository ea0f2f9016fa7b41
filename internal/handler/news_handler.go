package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"newsdigest/internal/model"
	"newsdigest/internal/summarizer"

	"github.com/gin-gonic/gin"
)

type ArticleStore interface {
	GetAll() ([]model.Article, error)
	GetByID(id int64) (*model.Article, error)
	Count() (int, error)
}

type NewsHandler struct {
	repository ArticleStore
	engine     summarizer.Engine
	sentences  int
}

func NewNewsHandler(repository ArticleStore, engine summarizer.Engine, sentences int) *NewsHandler {
	return &NewsHandler{repository: repository, engine: engine, sentences: sentences}
}

func (h *NewsHandler) Home(c *gin.Context) {
	articles, err := h.repository.GetAll()
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		renderMessage(c, http.StatusInternalServerError, "Database error")
		return
	}

	renderHTML(c, http.StatusOK, homeTemplate, struct {
		Heading  string
		Articles []model.Article
	}{
		Heading:  pageTitle,
		Articles: articles,
	})
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	articles, err := h.repository.GetAll()
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]NewsResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, NewsResponse{
			ID:      a.ID,
			Title:   a.Title,
			Content: a.Content,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) Summarize(c *gin.Context) {
	id := c.Param("id")

	articleId, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Warn("invalid article id", "id", id, "error", err)
		renderMessage(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.repository.GetByID(articleId)
	if err != nil {
		slog.Error("error fetching article", "error", err, "article_id", articleId)
		renderMessage(c, http.StatusInternalServerError, "Database error")
		return
	}

	if article == nil {
		renderMessage(c, http.StatusNotFound, "Article not found")
		return
	}

	result := h.engine.Summarize(article.Content, h.sentences)
	if result.Failed() {
		slog.Warn("summarization failed", "error", result.Err, "article_id", articleId)
	}

	renderHTML(c, http.StatusOK, summaryTemplate, struct {
		Title   string
		Summary string
	}{
		Title:   article.Title,
		Summary: result.Message(),
	})
}

func (h *NewsHandler) Favicon(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", nil)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	total, err := h.repository.Count()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Articles: total,
	})
}

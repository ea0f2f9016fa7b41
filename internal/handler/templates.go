package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const pageTitle = "Data Driven Online News Summarizer-ML-NLP"

var (
	homeTemplate = template.Must(template.New("home").Parse(
		`<h1>{{.Heading}}</h1><ul>{{range .Articles}}<li><b>{{.Title}}</b> - <a href='/summarize/{{.ID}}'>Summarize</a></li>{{end}}</ul>`))

	summaryTemplate = template.Must(template.New("summary").Parse(
		`<h2>{{.Title}}</h2><p><b>Summary:</b> {{.Summary}}</p>`))

	messageTemplate = template.Must(template.New("message").Parse(
		`<h2>{{.}}</h2>`))
)

func renderHTML(c *gin.Context, status int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("error rendering template", "template", tmpl.Name(), "error", err)
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte("<h2>Internal error</h2>"))
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func renderMessage(c *gin.Context, status int, message string) {
	renderHTML(c, status, messageTemplate, message)
}

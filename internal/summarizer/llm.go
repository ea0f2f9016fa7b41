package summarizer

import (
	"errors"
	"log/slog"
	"strings"

	"newsdigest/pkg/llm"
)

// LLM delegates summarization of long texts to an abstractive model.
type LLM struct {
	client llm.SummaryClient
}

func NewLLM(client llm.SummaryClient) *LLM {
	return &LLM{client: client}
}

func (e *LLM) Summarize(text string, sentences int) Result {
	cleaned, n, res, done := prepare(text, sentences)
	if done {
		return res
	}

	out, err := e.client.Summarize(llm.SummaryInput{Text: cleaned, Sentences: n})
	if err != nil {
		slog.Error("error summarizing with llm", "error", err)
		return Failure(err)
	}

	summary := strings.TrimSpace(out.Summary)
	if summary == "" {
		return Failure(errors.New("empty summary from " + out.ModelUsed))
	}

	return Success(summary)
}

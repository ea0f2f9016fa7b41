package summarizer

import (
	"errors"
	"testing"

	"newsdigest/pkg/llm"

	"github.com/go-playground/assert/v2"
)

type fakeSummaryClient struct {
	result *llm.SummaryResult
	err    error
	calls  []llm.SummaryInput
}

func (f *fakeSummaryClient) Summarize(input llm.SummaryInput) (*llm.SummaryResult, error) {
	f.calls = append(f.calls, input)
	return f.result, f.err
}

func TestLLM_ShortTextSkipsClient(t *testing.T) {
	client := &fakeSummaryClient{}
	res := NewLLM(client).Summarize("Only a few words here.", 3)

	assert.Equal(t, "Only a few words here.", res.Text)
	assert.Equal(t, 0, len(client.calls))
}

func TestLLM_EmptyInput(t *testing.T) {
	client := &fakeSummaryClient{}
	res := NewLLM(client).Summarize("", 3)

	assert.Equal(t, NoContentMessage, res.Message())
	assert.Equal(t, 0, len(client.calls))
}

func TestLLM_PassesCleanedText(t *testing.T) {
	client := &fakeSummaryClient{result: &llm.SummaryResult{Summary: " Buses are coming. ", ModelUsed: "test"}}
	res := NewLLM(client).Summarize("<p>"+longArticle+"</p>", 0)

	assert.Equal(t, false, res.Failed())
	assert.Equal(t, "Buses are coming.", res.Text)
	assert.Equal(t, 1, len(client.calls))
	assert.Equal(t, longArticle, client.calls[0].Text)
	assert.Equal(t, DefaultSentences, client.calls[0].Sentences)
}

func TestLLM_ClientError(t *testing.T) {
	client := &fakeSummaryClient{err: errors.New("rate limited")}
	res := NewLLM(client).Summarize(longArticle, 3)

	assert.Equal(t, true, res.Failed())
	assert.Equal(t, "Could not summarize due to error: rate limited", res.Message())
}

func TestLLM_EmptySummary(t *testing.T) {
	client := &fakeSummaryClient{result: &llm.SummaryResult{Summary: "  ", ModelUsed: "test"}}
	res := NewLLM(client).Summarize(longArticle, 3)

	assert.Equal(t, true, res.Failed())
}

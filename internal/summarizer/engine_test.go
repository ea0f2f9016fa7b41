package summarizer

import (
	"testing"

	"newsdigest/internal/config"

	"github.com/go-playground/assert/v2"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine(config.SummarizerConfig{Backend: config.BackendTextRank})
	assert.Equal(t, nil, err)
	_, ok := engine.(*TextRank)
	assert.Equal(t, true, ok)

	engine, err = NewEngine(config.SummarizerConfig{Backend: config.BackendOpenAI, OpenAIAPIKey: "sk-test"})
	assert.Equal(t, nil, err)
	_, ok = engine.(*LLM)
	assert.Equal(t, true, ok)

	_, err = NewEngine(config.SummarizerConfig{Backend: "bart"})
	assert.NotEqual(t, nil, err)
}

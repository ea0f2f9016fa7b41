package summarizer

import (
	"fmt"

	"newsdigest/internal/config"
	"newsdigest/pkg/llm"
)

// NewEngine builds the engine selected by the configured backend.
func NewEngine(cfg config.SummarizerConfig) (Engine, error) {
	switch cfg.Backend {
	case config.BackendTextRank, "":
		return NewTextRank(), nil
	case config.BackendOpenAI:
		return NewLLM(llm.NewOpenAIClient(cfg.OpenAIAPIKey)), nil
	case config.BackendAnthropic:
		return NewLLM(llm.NewAnthropicClient(cfg.AnthropicAPIKey)), nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend %q", cfg.Backend)
	}
}

package llm

import (
	"strings"
	"testing"
)

func TestCleanTextResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Leaders met in Geneva.",
			want:  "Leaders met in Geneva.",
		},
		{
			name:  "strips text fenced block",
			input: "```text\nLeaders met in Geneva.\n```",
			want:  "Leaders met in Geneva.",
		},
		{
			name:  "strips plain fenced block",
			input: "```\nLeaders met in Geneva.\n```",
			want:  "Leaders met in Geneva.",
		},
		{
			name:  "strips summary label",
			input: "Summary: Leaders met in Geneva.",
			want:  "Leaders met in Geneva.",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Leaders met in Geneva.  ",
			want:  "Leaders met in Geneva.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanTextResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryUserPrompt(t *testing.T) {
	got := summaryUserPrompt(SummaryInput{Text: "Body text.", Sentences: 3})

	if !strings.Contains(got, "at most 3 sentences") {
		t.Errorf("prompt missing sentence count: %q", got)
	}
	if !strings.HasSuffix(got, "Article: Body text.") {
		t.Errorf("prompt missing article text: %q", got)
	}
}

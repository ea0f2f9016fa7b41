package llm

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You are a news editor. Given the text of a single news article, write an extractive-style summary.

Rules:
- Use only facts stated in the article
- Keep names, numbers, dates and places exactly as written
- Neutral tone, no commentary
- Plain text only, no headings, bullets or markdown`

func summaryUserPrompt(input SummaryInput) string {
	return fmt.Sprintf("Summarize the following article in at most %d sentences.\n\nArticle: %s", input.Sentences, input.Text)
}

func cleanTextResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses label the answer.
	content = strings.TrimPrefix(content, "Summary:")
	return strings.TrimSpace(content)
}

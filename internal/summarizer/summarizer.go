// Package summarizer reduces article text to a few representative sentences.
package summarizer

import (
	"fmt"

	"newsdigest/internal/textclean"
)

const (
	DefaultSentences = 3
	MinWords         = 30
	NoContentMessage = "No content available."
)

// Result is the outcome of a summarization. Err is set when the engine failed;
// Text then holds nothing useful and callers should render Message.
type Result struct {
	Text string
	Err  error
}

func Success(text string) Result {
	return Result{Text: text}
}

func Failure(err error) Result {
	return Result{Err: err}
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Message is the text shown to readers, including for failed summaries.
func (r Result) Message() string {
	if r.Err != nil {
		return fmt.Sprintf("Could not summarize due to error: %s", r.Err)
	}
	return r.Text
}

// Engine summarizes raw article text into at most the given number of sentences.
type Engine interface {
	Summarize(text string, sentences int) Result
}

// prepare applies the rules every engine shares. When done is true, res is final.
func prepare(text string, sentences int) (cleaned string, n int, res Result, done bool) {
	cleaned = textclean.Clean(text)
	if cleaned == "" {
		return "", 0, Success(NoContentMessage), true
	}

	if textclean.WordCount(cleaned) < MinWords {
		return cleaned, 0, Success(cleaned), true
	}

	if sentences <= 0 {
		sentences = DefaultSentences
	}

	return cleaned, sentences, Result{}, false
}

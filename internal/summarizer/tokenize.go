package summarizer

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// A token counts as a word when it starts with a letter and holds only
// letters, apostrophes and hyphens.
var wordPattern = regexp.MustCompile(`^\p{L}[\p{L}'’-]*$`)

var (
	tokenizerOnce sync.Once
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// sentenceTokenizer loads the English Punkt model on first use.
func sentenceTokenizer() (*sentences.DefaultSentenceTokenizer, error) {
	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = english.NewSentenceTokenizer(nil)
		if tokenizerErr != nil {
			tokenizerErr = fmt.Errorf("load sentence tokenizer: %w", tokenizerErr)
		}
	})
	return tokenizer, tokenizerErr
}

// splitSentences breaks cleaned text into trimmed, non-empty sentences.
func splitSentences(text string) ([]string, error) {
	tok, err := sentenceTokenizer()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

// words returns the lower-cased alphabetic words of a sentence.
func words(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’' && r != '-'
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'’-")
		if wordPattern.MatchString(f) {
			out = append(out, f)
		}
	}
	return out
}

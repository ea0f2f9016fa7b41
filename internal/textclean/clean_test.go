package textclean

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "strips tags",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "collapses whitespace",
			input: "one\n\n  two\t\tthree",
			want:  "one two three",
		},
		{
			name:  "trims ends",
			input: "   padded   ",
			want:  "padded",
		},
		{
			name:  "tag with attributes",
			input: `<a href="https://example.com">link</a> text`,
			want:  "link text",
		},
		{
			name:  "whitespace only",
			input: " \n\t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<div>\n  Nested <span>markup</span>\n</div>  and   tail",
		"a < b and c > d",
		"<<double>> brackets",
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once))
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount(" one  two\nthree "))
}

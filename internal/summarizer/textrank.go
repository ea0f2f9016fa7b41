package summarizer

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var ErrNoSentences = errors.New("text contains no sentences")

// TextRank is an extractive engine that ranks sentences by centrality in a
// graph whose edges are weighted by word overlap.
type TextRank struct {
	Damping       float64
	Epsilon       float64
	MaxIterations int
}

func NewTextRank() *TextRank {
	return &TextRank{
		Damping:       0.85,
		Epsilon:       1e-4,
		MaxIterations: 1000,
	}
}

func (t *TextRank) Summarize(text string, sentences int) (res Result) {
	cleaned, n, res, done := prepare(text, sentences)
	if done {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res = Failure(fmt.Errorf("%v", r))
		}
	}()

	selected, err := t.rank(cleaned, n)
	if err != nil {
		return Failure(err)
	}

	return Success(strings.Join(selected, " "))
}

// rank returns the n best sentences in document order.
func (t *TextRank) rank(text string, n int) ([]string, error) {
	sentences, err := splitSentences(text)
	if err != nil {
		return nil, err
	}
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}

	if n >= len(sentences) {
		return sentences, nil
	}

	tokens := make([][]string, len(sentences))
	for i, s := range sentences {
		tokens[i] = words(s)
	}

	scores, err := t.powerMethod(transitionMatrix(tokens, t.Damping))
	if err != nil {
		return nil, err
	}

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	best := order[:n]
	sort.Ints(best)

	selected := make([]string, 0, n)
	for _, i := range best {
		selected = append(selected, sentences[i])
	}
	return selected, nil
}

func transitionMatrix(tokens [][]string, damping float64) [][]float64 {
	size := len(tokens)
	weights := make([][]float64, size)
	for i := range weights {
		weights[i] = make([]float64, size)
	}

	for i := 0; i < size; i++ {
		for j := i; j < size; j++ {
			w := edgeWeight(tokens[i], tokens[j])
			weights[i][j] = w
			weights[j][i] = w
		}
	}

	const zeroDivisionPrevention = 1e-7
	base := (1 - damping) / float64(size)
	for i := 0; i < size; i++ {
		var sum float64
		for _, w := range weights[i] {
			sum += w
		}
		for j := range weights[i] {
			weights[i][j] = base + damping*weights[i][j]/(sum+zeroDivisionPrevention)
		}
	}

	return weights
}

// edgeWeight counts shared words, normalized by the log of both sentence lengths.
func edgeWeight(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	counts := make(map[string]int, len(b))
	for _, w := range b {
		counts[w]++
	}
	self := make(map[string]int, len(a))
	for _, w := range a {
		self[w]++
	}

	var shared float64
	for _, w := range a {
		shared += float64(min(self[w], counts[w]))
	}
	if shared == 0 {
		return 0
	}

	norm := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if norm < 1e-9 {
		return shared
	}
	return shared / norm
}

func (t *TextRank) powerMethod(matrix [][]float64) ([]float64, error) {
	size := len(matrix)
	p := make([]float64, size)
	for i := range p {
		p[i] = 1 / float64(size)
	}

	for iter := 0; iter < t.MaxIterations; iter++ {
		next := make([]float64, size)
		for i := 0; i < size; i++ {
			var v float64
			for j := 0; j < size; j++ {
				v += matrix[j][i] * p[j]
			}
			next[i] = v
		}

		var delta float64
		for i := range next {
			d := next[i] - p[i]
			delta += d * d
		}
		p = next

		if math.Sqrt(delta) <= t.Epsilon {
			return p, nil
		}
	}

	return nil, fmt.Errorf("sentence ranking did not converge after %d iterations", t.MaxIterations)
}

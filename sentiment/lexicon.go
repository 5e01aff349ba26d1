package sentiment

import (
	"strconv"
	"strings"

	"github.com/kevinskim93/hungr-ai/data"
	"github.com/kevinskim93/hungr-ai/internal/fold"
	"github.com/kevinskim93/hungr-ai/tokenizer"
)

// lexicon maps folded words to sentiment weights, built once at init.
var lexicon map[string]float64

func init() {
	lexicon = parseLexicon(data.SentimentLexicon)
}

// parseLexicon parses tab-separated "term\tweight" lines.
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		term := fold.Fold(strings.TrimSpace(parts[0]))
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		m[term] = weight
	}
	return m
}

// analyze implements the core sentiment analysis pipeline.
func analyze(text string) Result {
	words := tokenizer.Words(text)
	if len(words) == 0 {
		return Result{}
	}

	var (
		sum      float64
		posCount int
		negCount int
	)

	for _, word := range words {
		weight, ok := lexicon[fold.Fold(word)]
		if !ok {
			continue
		}

		sum += weight
		if weight > 0 {
			posCount++
		} else if weight < 0 {
			negCount++
		}
	}

	if posCount == 0 && negCount == 0 {
		return Result{
			Sentiment: Neutral,
			Total:     len(words),
		}
	}

	// Comparative score: matched weight over total word count. Individual
	// weights live in [-1, 1], so the quotient already does too; the clamp
	// guards against a lexicon entry outside that range.
	score := clamp(sum/float64(len(words)), -1, 1)

	var polarity Sentiment
	switch {
	case score > 0:
		polarity = Positive
	case score < 0:
		polarity = Negative
	default:
		polarity = Neutral
	}

	return Result{
		Sentiment: polarity,
		Score:     score,
		Positive:  posCount,
		Negative:  negCount,
		Total:     len(words),
	}
}

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

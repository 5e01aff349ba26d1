// Package sentiment performs lexicon-based sentiment analysis of review text.
//
// The analyzer tokenizes input, folds case and diacritics, and looks each
// word up in an embedded sentiment lexicon. The comparative score is the sum
// of matched word weights divided by the total word count, so a single
// enthusiastic word in a long review contributes less than the same word in
// a short one.
//
// Three convenience functions are provided:
//
//   - Analyze returns a full Result with score, polarity, and word counts.
//   - Score returns the comparative score (-1.0 to +1.0).
//   - IsPositive returns true when overall sentiment is positive.
//
// v1 limitations:
//
//   - No negation handling ("not good" scores as positive).
//   - No intensifier/diminisher support ("very good" scores as "good").
//   - Sarcasm is not detected.
//   - Words are matched on surface form only; there is no stemming beyond
//     having inflected forms ("loved", "disappointing") in the lexicon.
//
// All functions are safe for concurrent use by multiple goroutines.
package sentiment

import (
	"fmt"

	"github.com/goccy/go-json"
)

// maxInputBytes is the maximum input size. Inputs exceeding this return a zero Result.
const maxInputBytes = 1 << 20 // 1 MiB

// Sentiment represents the sentiment polarity.
type Sentiment int

const (
	Negative Sentiment = -1
	Neutral  Sentiment = 0
	Positive Sentiment = 1
)

// sentimentNames maps Sentiment values to their string names.
var sentimentNames = map[Sentiment]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

// sentimentFromName maps string names back to Sentiment values.
var sentimentFromName = map[string]Sentiment{
	"Negative": Negative,
	"Neutral":  Neutral,
	"Positive": Positive,
}

// String returns the name of the sentiment polarity.
func (s Sentiment) String() string {
	if name, ok := sentimentNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sentiment(%d)", int(s))
}

// MarshalJSON encodes the sentiment as a JSON string.
func (s Sentiment) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string into a Sentiment.
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, ok := sentimentFromName[str]
	if !ok {
		return fmt.Errorf("sentiment: unknown sentiment: %q", str)
	}
	*s = v
	return nil
}

// Result holds the sentiment analysis output.
type Result struct {
	Sentiment Sentiment `json:"sentiment"`
	Score     float64   `json:"score"`    // comparative score, -1.0 to +1.0
	Positive  int       `json:"positive"` // count of positive words
	Negative  int       `json:"negative"` // count of negative words
	Total     int       `json:"total"`    // total analyzed words
}

// String returns a debug representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("%s(score=%.2f, pos=%d, neg=%d, total=%d)",
		r.Sentiment, r.Score, r.Positive, r.Negative, r.Total)
}

// Analyze returns detailed sentiment analysis of text.
// Returns a zero Result for empty or oversized input.
func Analyze(text string) Result {
	if text == "" || len(text) > maxInputBytes {
		return Result{}
	}
	return analyze(text)
}

// Score returns the comparative sentiment score (-1.0 to +1.0).
func Score(text string) float64 {
	return Analyze(text).Score
}

// IsPositive returns true if overall sentiment is positive.
func IsPositive(text string) bool {
	return Analyze(text).Sentiment == Positive
}

// Package annotate extracts flavor descriptors and dish mentions from review
// text using lexicon lookups and a trigger-verb heuristic.
//
// Flavors are whole-word matches against the flavor lexicon. Dishes come from
// two merged passes: whole-word/phrase matches against the dish lexicon, then
// noun phrases following consumption verbs ("ordered", "tried", ...), which
// can surface dish names not in the static list. Each mention is returned
// with byte offsets satisfying the invariant s[m.Start:m.End] == m.Text.
//
// Two API layers are provided:
//
//   - Structured: Annotate returns a Result with ordered []Span per category.
//   - Convenience: Flavors and Dishes return []string for common use cases.
//
// Matching folds case and diacritics and collapses naive English plurals, so
// "Burgers" matches the lexicon entry "burger". Duplicates collapse into the
// first occurrence; lexicon dish matches precede contextual ones.
//
// Known limitations:
//
//   - No part-of-speech tagging. The trigger-verb pass takes the word run
//     after the verb up to the next function word or punctuation, so leading
//     adjectives are kept ("tried their famous lobster roll" yields
//     "famous lobster roll").
//   - Only the base trigger forms are recognized; "recommends" does not
//     trigger the contextual pass.
//   - Irregular plurals ("children", "loaves") are not folded.
//
// All functions are safe for concurrent use by multiple goroutines.
package annotate

import "fmt"

// maxInputBytes is the maximum input length Annotate will process.
// Inputs exceeding this are returned with no results.
const maxInputBytes = 1 << 20 // 1 MiB

// Span represents one extracted mention with its position in the source text.
type Span struct {
	Text  string `json:"text"`  // The matched text, as written in the review
	Start int    `json:"start"` // Byte offset in the original string (inclusive)
	End   int    `json:"end"`   // Byte offset in the original string (exclusive)
}

// String returns a debug representation, e.g. "ramen"[10:15].
func (s Span) String() string {
	return fmt.Sprintf("%q[%d:%d]", s.Text, s.Start, s.End)
}

// Result holds the annotation output for one review text.
type Result struct {
	Flavors []Span `json:"flavors"` // flavor descriptors, first-seen order
	Dishes  []Span `json:"dishes"`  // dish mentions: lexicon matches first, then contextual
}

// Annotate extracts flavor and dish mentions from text.
// Empty, whitespace-only, or oversized input yields an empty Result.
func Annotate(text string) Result {
	if text == "" || len(text) > maxInputBytes {
		return Result{}
	}
	return annotate(text)
}

// Flavors returns the flavor descriptor texts found in text, folded to
// lowercase, first-seen order, deduplicated.
func Flavors(text string) []string {
	return foldedTexts(Annotate(text).Flavors)
}

// Dishes returns the dish mention texts found in text, folded to lowercase:
// lexicon matches first, then contextual candidates, deduplicated.
func Dishes(text string) []string {
	return foldedTexts(Annotate(text).Dishes)
}

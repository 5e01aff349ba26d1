// Package lexicon exposes the static flavor-descriptor and dish-term
// vocabularies as read-only sets.
//
// Both sets are parsed once from embedded data files at package init and are
// never mutated afterwards; there is no runtime registration API. Membership
// tests fold their argument (lowercase, diacritics stripped), so
// IsDish("Crème Brûlée") behaves the same as IsDish("creme brulee") would if
// the term were listed.
//
// All functions are safe for concurrent use by multiple goroutines.
package lexicon

import (
	"strings"

	"github.com/kevinskim93/hungr-ai/data"
	"github.com/kevinskim93/hungr-ai/internal/fold"
)

var (
	flavorList []string
	flavorSet  map[string]struct{}
	dishList   []string
	dishSet    map[string]struct{}

	// maxDishWords is the word count of the longest dish phrase,
	// used by phrase matchers to bound their lookahead.
	maxDishWords int
)

func init() {
	flavorList, flavorSet = parseTerms(data.Flavors)
	dishList, dishSet = parseTerms(data.Dishes)
	for _, term := range dishList {
		if n := len(strings.Fields(term)); n > maxDishWords {
			maxDishWords = n
		}
	}
}

// parseTerms parses one term per line, skipping blanks and # comments.
// Terms are folded; duplicates keep their first position.
func parseTerms(raw string) ([]string, map[string]struct{}) {
	list := make([]string, 0, 64)
	set := make(map[string]struct{}, 64)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		term := fold.Fold(line)
		if _, dup := set[term]; dup {
			continue
		}
		set[term] = struct{}{}
		list = append(list, term)
	}
	return list, set
}

// IsFlavor reports whether term is a known flavor descriptor.
// The lookup is case- and diacritic-insensitive.
func IsFlavor(term string) bool {
	_, ok := flavorSet[fold.Fold(term)]
	return ok
}

// IsDish reports whether term is a known dish term or phrase.
// The lookup is case- and diacritic-insensitive.
func IsDish(term string) bool {
	_, ok := dishSet[fold.Fold(term)]
	return ok
}

// Flavors returns the flavor descriptors in data-file order.
// The returned slice is a copy; callers may modify it freely.
func Flavors() []string {
	out := make([]string, len(flavorList))
	copy(out, flavorList)
	return out
}

// Dishes returns the dish terms in data-file order.
// The returned slice is a copy; callers may modify it freely.
func Dishes() []string {
	out := make([]string, len(dishList))
	copy(out, dishList)
	return out
}

// MaxDishPhraseWords returns the word count of the longest dish phrase,
// e.g. 2 while "ice cream" is the longest entry.
func MaxDishPhraseWords() int {
	return maxDishWords
}

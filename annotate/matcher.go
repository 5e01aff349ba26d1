package annotate

import (
	"strings"

	"github.com/kevinskim93/hungr-ai/internal/fold"
	"github.com/kevinskim93/hungr-ai/lexicon"
	"github.com/kevinskim93/hungr-ai/tokenizer"
)

// triggerVerbs are the consumption/recommendation verbs that start the
// contextual dish pass. Matched on the folded base form only.
var triggerVerbs = map[string]bool{
	"ate": true, "ordered": true, "tried": true, "had": true,
	"enjoyed": true, "loved": true, "liked": true, "recommend": true,
}

// maxPhraseWords caps the length of a contextual dish candidate.
const maxPhraseWords = 4

// word is a Word-type token paired with its precomputed match key.
type word struct {
	tok tokenizer.Token
	key string // folded form
}

// annotate implements the extraction pipeline. The caller guarantees text is
// non-empty and within the size limit.
func annotate(text string) Result {
	tokens := tokenizer.WordTokens(text)

	// Word positions in the token stream, kept so the contextual pass can
	// detect intervening punctuation between adjacent words.
	words := make([]word, 0, len(tokens)/2+1)
	wordPos := make([]int, 0, len(tokens)/2+1)
	for i, t := range tokens {
		if t.Type == tokenizer.Word {
			words = append(words, word{tok: t, key: fold.Fold(t.Text)})
			wordPos = append(wordPos, i)
		}
	}
	if len(words) == 0 {
		return Result{}
	}

	var res Result
	seenFlavors := make(map[string]struct{})
	seenDishes := make(map[string]struct{})

	// Flavor pass: whole-word lexicon matches.
	for _, w := range words {
		key := singular(w.key)
		if !lexicon.IsFlavor(key) {
			continue
		}
		if _, dup := seenFlavors[key]; dup {
			continue
		}
		seenFlavors[key] = struct{}{}
		res.Flavors = append(res.Flavors, spanOf(text, w.tok, w.tok))
	}

	// Dish pass (a): lexicon word/phrase matches, longest phrase first.
	maxWords := lexicon.MaxDishPhraseWords()
	for i := 0; i < len(words); i++ {
		for n := maxWords; n >= 1; n-- {
			if i+n > len(words) {
				continue
			}
			if n > 1 && !adjacentRun(tokens, wordPos, i, i+n-1) {
				continue
			}
			key := phraseKey(words[i : i+n])
			if !lexicon.IsDish(key) {
				continue
			}
			if _, dup := seenDishes[key]; !dup {
				seenDishes[key] = struct{}{}
				res.Dishes = append(res.Dishes, spanOf(text, words[i].tok, words[i+n-1].tok))
			}
			i += n - 1 // skip the matched phrase
			break
		}
	}

	// Dish pass (b): noun phrases after trigger verbs.
	for i, w := range words {
		if !triggerVerbs[w.key] {
			continue
		}
		first, last, key := nounPhraseAfter(tokens, words, wordPos, i)
		if key == "" {
			continue
		}
		if _, dup := seenDishes[key]; dup {
			continue
		}
		seenDishes[key] = struct{}{}
		res.Dishes = append(res.Dishes, spanOf(text, first, last))
	}

	return res
}

// nounPhraseAfter extracts the candidate dish phrase following the trigger at
// word index ti: leading determiners are skipped, then words are collected
// until a function word, intervening punctuation, or the phrase cap. Returns
// the phrase's first and last tokens and its folded key, or "" when no
// candidate follows.
func nounPhraseAfter(tokens []tokenizer.Token, words []word, wordPos []int, ti int) (first, last tokenizer.Token, key string) {
	j := ti + 1
	for j < len(words) && isDeterminer(words[j].key) {
		if separated(tokens, wordPos, j-1, j) {
			return tokenizer.Token{}, tokenizer.Token{}, ""
		}
		j++
	}

	start := j
	for j < len(words) && j-start < maxPhraseWords {
		if isFunctionWord(words[j].key) {
			break
		}
		// Punctuation between words ends the clause, including punctuation
		// directly after the trigger ("we ordered, then waited").
		if separated(tokens, wordPos, j-1, j) {
			break
		}
		j++
	}
	if j == start {
		return tokenizer.Token{}, tokenizer.Token{}, ""
	}

	return words[start].tok, words[j-1].tok, phraseKey(words[start:j])
}

// adjacentRun reports whether words wi..wj are separated by whitespace only,
// pairwise, so phrase matches never span punctuation.
func adjacentRun(tokens []tokenizer.Token, wordPos []int, wi, wj int) bool {
	for k := wi; k < wj; k++ {
		if separated(tokens, wordPos, k, k+1) {
			return false
		}
	}
	return true
}

// separated reports whether anything other than whitespace lies between
// word wi and word wj in the token stream.
func separated(tokens []tokenizer.Token, wordPos []int, wi, wj int) bool {
	for k := wordPos[wi] + 1; k < wordPos[wj]; k++ {
		if tokens[k].Type != tokenizer.Space {
			return true
		}
	}
	return false
}

// phraseKey joins the folded, singular-collapsed word keys with single spaces.
func phraseKey(ws []word) string {
	if len(ws) == 1 {
		return singular(ws[0].key)
	}
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.key
	}
	// Only the head noun is singularized, so "fish tacos" keys as "fish taco".
	parts[len(parts)-1] = singular(parts[len(parts)-1])
	return strings.Join(parts, " ")
}

// singular collapses naive English plurals: "-es" after a sibilant, else a
// trailing "-s". Words shorter than four runes pass through so "gas" and
// "its" are untouched.
func singular(key string) string {
	if len(key) < 4 || !strings.HasSuffix(key, "s") || strings.HasSuffix(key, "ss") {
		return key
	}
	if strings.HasSuffix(key, "es") {
		stem := key[:len(key)-2]
		for _, suf := range []string{"s", "x", "z", "ch", "sh"} {
			if strings.HasSuffix(stem, suf) {
				return stem
			}
		}
	}
	return key[:len(key)-1]
}

// spanOf builds a Span covering tokens first..last of text.
func spanOf(text string, first, last tokenizer.Token) Span {
	return Span{
		Text:  text[first.Start:last.End],
		Start: first.Start,
		End:   last.End,
	}
}

// foldedTexts returns the folded texts of spans.
func foldedTexts(spans []Span) []string {
	if len(spans) == 0 {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = fold.Fold(s.Text)
	}
	return out
}

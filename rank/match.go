package rank

import (
	"strings"
	"unicode/utf8"

	"github.com/kevinskim93/hungr-ai/internal/fold"
	"github.com/kevinskim93/hungr-ai/lexicon"
	"github.com/kevinskim93/hungr-ai/review"
)

// maxMatchingReviews caps how many matching reviews are reported per venue.
const maxMatchingReviews = 3

// MatchingReviews returns, per venue ID, the reviews that textually match
// the query: a significant query term appears in the review text, an
// extracted flavor equals a query term, or an extracted dish contains one.
// Matches are sorted newest-first and capped at the 3 most recent. Venues
// with no matching review have no entry: an absent key means "no matches",
// not an error.
func MatchingReviews(venues []review.Venue, query string) map[string][]review.Review {
	terms := queryTerms(query)
	significant := significantTerms(terms)
	if len(terms) == 0 {
		return map[string][]review.Review{}
	}

	out := make(map[string][]review.Review, len(venues))
	for _, v := range venues {
		var matched []review.Review
		for _, r := range v.Reviews {
			if reviewMatches(r, terms, significant) {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}
		matched = sortByTimeDesc(matched)
		if len(matched) > maxMatchingReviews {
			matched = matched[:maxMatchingReviews]
		}
		out[v.ID] = matched
	}
	return out
}

// reviewMatches reports whether one review textually matches the query.
func reviewMatches(r review.Review, terms, significant []string) bool {
	if len(significant) > 0 {
		text := fold.Fold(r.Text)
		for _, t := range significant {
			if strings.Contains(text, t) {
				return true
			}
		}
	}
	for _, f := range r.ExtractedFlavors {
		for _, t := range terms {
			if f == t {
				return true
			}
		}
	}
	for _, d := range r.ExtractedDishes {
		for _, t := range terms {
			if strings.Contains(d, t) {
				return true
			}
		}
	}
	return false
}

// queryTerms splits the query into folded whitespace-delimited tokens.
func queryTerms(query string) []string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}
	terms := make([]string, len(fields))
	for i, f := range fields {
		terms[i] = fold.Fold(f)
	}
	return terms
}

// significantTerms filters tokens long enough for substring matching.
func significantTerms(terms []string) []string {
	var out []string
	for _, t := range terms {
		if utf8.RuneCountInString(t) > MinSignificantTermLen {
			out = append(out, t)
		}
	}
	return out
}

// searchTerms derives the ranking term set from the query: lexicon flavor
// and dish hits (including adjacent-token dish phrases), falling back to
// significant query tokens when the query names nothing the lexicons know.
// This set is computed independently of the MatchingReviews term set; the
// two differ when lexicon words mix with short connector tokens.
func searchTerms(query string) []string {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var hits []string
	for i, t := range terms {
		if lexicon.IsFlavor(t) || lexicon.IsDish(t) {
			hits = append(hits, t)
			continue
		}
		// Adjacent-token dish phrases, e.g. "ice cream".
		if i+1 < len(terms) {
			if phrase := t + " " + terms[i+1]; lexicon.IsDish(phrase) {
				hits = append(hits, phrase)
			}
		}
	}
	if len(hits) > 0 {
		return hits
	}
	return significantTerms(terms)
}

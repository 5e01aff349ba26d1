// Package rank orders venues by how well their reviews match a free-text
// craving query.
//
// The composite match score per venue combines four weighted components:
// normalized venue rating, recency-weighted term matches, recency-weighted
// sentiment, and raw review recency. Reviews are sorted newest-first before
// recency weights are assigned (input review order is never trusted), and
// the components are summed in a fixed order (rating, match, sentiment,
// recency) so scores are bit-for-bit reproducible.
//
// Venues with equal scores keep their input order: the sort is stable and
// ties are intentionally not broken further.
//
// Rank never fails. A venue with no reviews scores on rating alone, a venue
// with no rating contributes zero for that component, and an empty venue
// list yields an empty result.
//
// All functions are safe for concurrent use by multiple goroutines.
package rank

import (
	"sort"
	"strings"

	"github.com/kevinskim93/hungr-ai/review"
)

// MinSignificantTermLen is the exclusive lower bound on query token length
// for substring matching: tokens must be longer than this to participate.
// Short tokens ("a", "the", "hot") produce too many false substring hits,
// but remain eligible for exact lexicon matches.
const MinSignificantTermLen = 3

// Weights configures the relative influence of the four score components.
// Weights are applied as given: they are not validated, renormalized, or
// required to sum to 1.
type Weights struct {
	Recency   float64 `json:"recency" yaml:"recency"`
	Sentiment float64 `json:"sentiment" yaml:"sentiment"`
	Rating    float64 `json:"rating" yaml:"rating"`
	Match     float64 `json:"match" yaml:"match"`
}

// DefaultWeights are the standard component weights.
var DefaultWeights = Weights{
	Recency:   0.3,
	Sentiment: 0.3,
	Rating:    0.2,
	Match:     0.2,
}

// Rank scores and orders venues for the query using DefaultWeights.
func Rank(venues []review.Venue, query string) []review.Venue {
	return RankWeighted(venues, query, DefaultWeights)
}

// RankWeighted scores every venue against the query and returns new venue
// copies, sorted descending by MatchScore. The input slice and its venues
// are not modified.
func RankWeighted(venues []review.Venue, query string, w Weights) []review.Venue {
	if len(venues) == 0 {
		return nil
	}

	terms := searchTerms(query)

	ranked := make([]review.Venue, len(venues))
	for i, v := range venues {
		ranked[i] = v
		ranked[i].MatchScore = score(v, terms, w)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

// score computes the composite match score for one venue.
func score(v review.Venue, terms []string, w Weights) float64 {
	ratingScore := v.Rating / 5 * w.Rating
	if len(v.Reviews) == 0 {
		return ratingScore
	}

	sorted := sortByTimeDesc(v.Reviews)
	n := float64(len(sorted))

	var matchSum, sentimentSum, recencySum float64
	for i, r := range sorted {
		recency := 1 - float64(i)/n

		matches := countFlavorMatches(r.ExtractedFlavors, terms) +
			countDishMatches(r.ExtractedDishes, terms)
		matchSum += float64(matches) * recency
		sentimentSum += r.SentimentScore * recency
		recencySum += recency
	}

	matchScore := matchSum / n * w.Match
	// Sentiment averages live in [-1, 1]; remap to [0, 1] before weighting.
	sentimentScore := (sentimentSum/n + 1) / 2 * w.Sentiment
	recencyScore := recencySum / n * w.Recency

	// Fixed summation order keeps floating-point results reproducible.
	return ratingScore + matchScore + sentimentScore + recencyScore
}

// countFlavorMatches counts extracted flavors that exactly equal a search term.
func countFlavorMatches(flavors, terms []string) int {
	count := 0
	for _, f := range flavors {
		for _, t := range terms {
			if f == t {
				count++
				break
			}
		}
	}
	return count
}

// countDishMatches counts extracted dishes that contain a search term.
func countDishMatches(dishes, terms []string) int {
	count := 0
	for _, d := range dishes {
		for _, t := range terms {
			if strings.Contains(d, t) {
				count++
				break
			}
		}
	}
	return count
}

// sortByTimeDesc returns a copy of reviews sorted newest-first.
// The copy keeps ranking from reordering the caller's slice.
func sortByTimeDesc(reviews []review.Review) []review.Review {
	sorted := make([]review.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time > sorted[j].Time
	})
	return sorted
}

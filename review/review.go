// Package review defines the venue and review data model and enriches raw
// reviews with sentiment and extracted flavor/dish terms.
//
// Analyze and AnalyzeVenue are pure: they return annotated copies and never
// mutate their inputs. Enrichment is derived solely from the review text, so
// re-running analysis on the same text always yields the same result. A
// review with no text degrades to neutral enrichment (zero sentiment, empty
// term lists) rather than an error, and the lists are always non-nil so
// callers need not check for missing enrichment.
//
// All functions are safe for concurrent use by multiple goroutines.
package review

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/kevinskim93/hungr-ai/annotate"
	"github.com/kevinskim93/hungr-ai/sentiment"
)

// Review is one user-submitted text+rating record about a venue.
// The first block of fields arrives from the venue source; the enrichment
// block is populated by Analyze.
type Review struct {
	Author       string  `json:"authorName"`
	Rating       float64 `json:"rating"` // 0–5, may be fractional
	RelativeTime string  `json:"relativeTimeDescription"`
	Text         string  `json:"text"`
	Time         int64   `json:"time"` // epoch seconds, recency ordering
	Language     string  `json:"language"`

	// Enrichment, derived from Text.
	SentimentScore   float64  `json:"sentimentScore"`   // comparative, in [-1, 1]
	ExtractedFlavors []string `json:"extractedFlavors"` // lowercase, first-seen order
	ExtractedDishes  []string `json:"extractedDishes"`  // lowercase, lexicon matches first
}

// Venue is a place candidate with metadata and a review list.
type Venue struct {
	ID          string   `json:"id"` // provider-assigned, unique per venue
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Rating      float64  `json:"rating"`
	RatingCount int      `json:"userRatingsTotal"`
	PriceLevel  int      `json:"priceLevel,omitempty"`
	Vicinity    string   `json:"vicinity"`
	Photos      []string `json:"photos,omitempty"`
	Reviews     []Review `json:"reviews"`
	Types       []string `json:"types,omitempty"`

	// MatchScore is assigned by the ranking engine; zero until ranked.
	MatchScore float64 `json:"matchScore,omitempty"`
}

// Analyze returns a copy of r with SentimentScore, ExtractedFlavors, and
// ExtractedDishes populated from its text. Empty text yields zero sentiment
// and empty (non-nil) term lists.
func Analyze(r Review) Review {
	out := r
	out.SentimentScore = sentiment.Score(r.Text)
	out.ExtractedFlavors = nonNil(annotate.Flavors(r.Text))
	out.ExtractedDishes = nonNil(annotate.Dishes(r.Text))
	return out
}

// AnalyzeVenue returns a copy of v with every review analyzed, preserving
// review order and count. All other venue fields pass through unchanged.
func AnalyzeVenue(v Venue) Venue {
	out := v
	if len(v.Reviews) == 0 {
		return out
	}
	out.Reviews = make([]Review, len(v.Reviews))
	for i, r := range v.Reviews {
		out.Reviews[i] = Analyze(r)
	}
	return out
}

// AnalyzeVenues maps AnalyzeVenue over a venue list, preserving order.
func AnalyzeVenues(venues []Venue) []Venue {
	if len(venues) == 0 {
		return nil
	}
	out := make([]Venue, len(venues))
	for i, v := range venues {
		out[i] = AnalyzeVenue(v)
	}
	return out
}

// DecodeVenues parses a JSON array of venues.
func DecodeVenues(data []byte) ([]Venue, error) {
	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("review: decoding venues: %w", err)
	}
	return venues, nil
}

// nonNil replaces a nil slice with an empty one.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package rank

import (
	"math"
	"testing"

	"github.com/kevinskim93/hungr-ai/review"
)

// FuzzRank checks structural invariants over arbitrary review text and
// queries: ranking never panics, scores are finite, the output is a
// permutation of the input, and scores are non-increasing.
func FuzzRank(f *testing.F) {
	f.Add("The spicy ramen was amazing", "spicy ramen", 4.5)
	f.Add("", "", 0.0)
	f.Add("Bland and overpriced", "cheap eats", 2.0)
	f.Add("जलेबी बहुत अच्छी थी", "jalebi", 5.0)
	f.Add("!!!???...", "???", -1.0)

	f.Fuzz(func(t *testing.T, text, query string, rating float64) {
		if math.IsNaN(rating) || math.IsInf(rating, 0) {
			t.Skip("rating outside any real rating scale")
		}
		venues := review.AnalyzeVenues([]review.Venue{
			{ID: "a", Rating: rating, Reviews: []review.Review{{Text: text, Time: 2}}},
			{ID: "b", Rating: 3.5, Reviews: []review.Review{
				{Text: "Great tacos", Time: 1},
				{Text: text, Time: 3},
			}},
			{ID: "c"},
		})

		ranked := Rank(venues, query)
		if len(ranked) != len(venues) {
			t.Fatalf("Rank returned %d venues, want %d", len(ranked), len(venues))
		}

		seen := map[string]bool{}
		for i, v := range ranked {
			if math.IsNaN(v.MatchScore) || math.IsInf(v.MatchScore, 0) {
				t.Fatalf("venue %q: non-finite score %v", v.ID, v.MatchScore)
			}
			if seen[v.ID] {
				t.Fatalf("venue %q appears twice", v.ID)
			}
			seen[v.ID] = true
			if i > 0 && ranked[i-1].MatchScore < v.MatchScore {
				t.Fatalf("scores not descending at %d: %v < %v",
					i, ranked[i-1].MatchScore, v.MatchScore)
			}
		}
		for _, v := range venues {
			if !seen[v.ID] {
				t.Fatalf("venue %q missing from output", v.ID)
			}
		}

		again := Rank(venues, query)
		for i := range ranked {
			if ranked[i].ID != again[i].ID || ranked[i].MatchScore != again[i].MatchScore {
				t.Fatalf("ranking not deterministic at %d", i)
			}
		}

		for id, matched := range MatchingReviews(venues, query) {
			if len(matched) > 3 {
				t.Fatalf("venue %q: %d matching reviews, cap is 3", id, len(matched))
			}
			for i := 1; i < len(matched); i++ {
				if matched[i-1].Time < matched[i].Time {
					t.Fatalf("venue %q: matches not newest-first", id)
				}
			}
		}
	})
}

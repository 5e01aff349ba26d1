//go:build ignore

// e2e_pipeline exercises every analysis module in a single run and writes
// structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/kevinskim93/hungr-ai/annotate"
	"github.com/kevinskim93/hungr-ai/lexicon"
	"github.com/kevinskim93/hungr-ai/rank"
	"github.com/kevinskim93/hungr-ai/review"
	"github.com/kevinskim93/hungr-ai/sentiment"
	"github.com/kevinskim93/hungr-ai/tokenizer"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	moduleCount  = 6
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	suiteCount   = 9
)

// ---------- test corpus ----------

const textPositive = `The spicy ramen was absolutely amazing. Rich tonkotsu broth, perfectly chewy noodles, and the service was wonderful. We also ordered the pork belly bao and loved every bite.`

const textNegative = `Terrible experience. The soup was cold and bland, the waiter was rude, and we waited an hour for overpriced food. Disappointing from start to finish.`

const textMixed = `Great tacos but the salsa was too salty for my taste. Dr. Kim recommended the carnitas, which were tender and smoky, though the portions felt small.`

const textNeutral = `The restaurant is located on Main St. near the station. It opens at 11 a.m. and closes at 10 p.m. on weekdays.`

const textAccented = `The jalapeño poppers and crème brûlée were delicious. Chef's dégustation menu featured a sublime consommé.`

const textBroken = `best  burgers,,ive EVER had!!no joke..would recommend   the truffle fries 10/10`

const venuesJSON = `[
  {
    "id": "v1",
    "name": "Ramen House",
    "rating": 4.6,
    "userRatingsTotal": 321,
    "reviews": [
      {"authorName": "A", "rating": 5, "text": "The spicy ramen was amazing and the broth was rich.", "time": 300},
      {"authorName": "B", "rating": 4, "text": "Great ramen, slow service.", "time": 200},
      {"authorName": "C", "rating": 2, "text": "Bland noodles, cold soup.", "time": 100}
    ]
  },
  {
    "id": "v2",
    "name": "Taco Corner",
    "rating": 4.1,
    "userRatingsTotal": 98,
    "reviews": [
      {"authorName": "D", "rating": 5, "text": "Best tacos in town, the salsa is wonderful.", "time": 250}
    ]
  },
  {
    "id": "v3",
    "name": "Quiet Cafe",
    "rating": 3.8,
    "userRatingsTotal": 40,
    "reviews": []
  }
]`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func hasLetterRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}

// ---------- test suites ----------

func testTokenizer() []testResult {
	const mod = "tokenizer"
	var results []testResult

	results = append(results, safeRun(mod, "word_tokens_reconstruction", func() testResult {
		start := time.Now()
		tokens := tokenizer.WordTokens(textPositive)
		var sb strings.Builder
		for _, t := range tokens {
			sb.WriteString(t.Text)
		}
		if sb.String() != textPositive {
			return fail(mod, "word_tokens_reconstruction", "concatenated tokens != original", start)
		}
		return pass(mod, "word_tokens_reconstruction", start)
	}))

	results = append(results, safeRun(mod, "word_tokens_offset_invariant", func() testResult {
		start := time.Now()
		for _, text := range []string{textPositive, textAccented, textBroken} {
			for _, t := range tokenizer.WordTokens(text) {
				if text[t.Start:t.End] != t.Text {
					return fail(mod, "word_tokens_offset_invariant",
						fmt.Sprintf("text[%d:%d]=%q != token.Text=%q", t.Start, t.End, text[t.Start:t.End], t.Text), start)
				}
			}
		}
		return pass(mod, "word_tokens_offset_invariant", start)
	}))

	results = append(results, safeRun(mod, "sentence_tokens_offset_invariant", func() testResult {
		start := time.Now()
		for _, t := range tokenizer.SentenceTokens(textMixed) {
			if textMixed[t.Start:t.End] != t.Text {
				return fail(mod, "sentence_tokens_offset_invariant",
					fmt.Sprintf("text[%d:%d] != token.Text=%q", t.Start, t.End, t.Text), start)
			}
		}
		return pass(mod, "sentence_tokens_offset_invariant", start)
	}))

	results = append(results, safeRun(mod, "words_nonempty", func() testResult {
		start := time.Now()
		words := tokenizer.Words(textPositive)
		if len(words) == 0 {
			return fail(mod, "words_nonempty", "Words() returned 0 words", start)
		}
		for _, w := range words {
			if !hasLetterRune(w) {
				return fail(mod, "words_nonempty", fmt.Sprintf("word %q has no letters", w), start)
			}
		}
		return pass(mod, "words_nonempty", start)
	}))

	results = append(results, safeRun(mod, "abbreviations_do_not_split", func() testResult {
		start := time.Now()
		sents := tokenizer.Sentences(textNeutral)
		if len(sents) != 2 {
			return fail(mod, "abbreviations_do_not_split",
				fmt.Sprintf("expected 2 sentences, got %d: %q", len(sents), sents), start)
		}
		return pass(mod, "abbreviations_do_not_split", start)
	}))

	return results
}

func testLexicon() []testResult {
	const mod = "lexicon"
	var results []testResult

	results = append(results, safeRun(mod, "flavor_lookup", func() testResult {
		start := time.Now()
		for _, w := range []string{"spicy", "SPICY", "sweet"} {
			if !lexicon.IsFlavor(w) {
				return fail(mod, "flavor_lookup", fmt.Sprintf("IsFlavor(%q) == false", w), start)
			}
		}
		if lexicon.IsFlavor("ramen") {
			return fail(mod, "flavor_lookup", `IsFlavor("ramen") == true`, start)
		}
		return pass(mod, "flavor_lookup", start)
	}))

	results = append(results, safeRun(mod, "dish_lookup", func() testResult {
		start := time.Now()
		for _, w := range []string{"ramen", "tacos", "ice cream"} {
			if !lexicon.IsDish(w) {
				return fail(mod, "dish_lookup", fmt.Sprintf("IsDish(%q) == false", w), start)
			}
		}
		return pass(mod, "dish_lookup", start)
	}))

	results = append(results, safeRun(mod, "term_lists_nonempty", func() testResult {
		start := time.Now()
		if len(lexicon.Flavors()) == 0 || len(lexicon.Dishes()) == 0 {
			return fail(mod, "term_lists_nonempty", "embedded term list is empty", start)
		}
		return pass(mod, "term_lists_nonempty", start)
	}))

	return results
}

func testSentiment() []testResult {
	const mod = "sentiment"
	var results []testResult

	results = append(results, safeRun(mod, "positive_text", func() testResult {
		start := time.Now()
		r := sentiment.Analyze(textPositive)
		if r.Sentiment != sentiment.Positive {
			return fail(mod, "positive_text", fmt.Sprintf("Sentiment=%v, want Positive", r.Sentiment), start)
		}
		if r.Score <= 0 {
			return fail(mod, "positive_text", fmt.Sprintf("Score=%v, want > 0", r.Score), start)
		}
		return pass(mod, "positive_text", start)
	}))

	results = append(results, safeRun(mod, "negative_text", func() testResult {
		start := time.Now()
		r := sentiment.Analyze(textNegative)
		if r.Sentiment != sentiment.Negative {
			return fail(mod, "negative_text", fmt.Sprintf("Sentiment=%v, want Negative", r.Sentiment), start)
		}
		return pass(mod, "negative_text", start)
	}))

	results = append(results, safeRun(mod, "score_bounds", func() testResult {
		start := time.Now()
		for _, text := range []string{textPositive, textNegative, textMixed, textNeutral, textBroken, ""} {
			s := sentiment.Score(text)
			if s < -1 || s > 1 {
				return fail(mod, "score_bounds", fmt.Sprintf("Score(%q) = %v out of [-1,1]", truncate(text, 30), s), start)
			}
		}
		return pass(mod, "score_bounds", start)
	}))

	results = append(results, safeRun(mod, "empty_is_neutral", func() testResult {
		start := time.Now()
		r := sentiment.Analyze("")
		if r.Sentiment != sentiment.Neutral || r.Score != 0 {
			return fail(mod, "empty_is_neutral", fmt.Sprintf("got %v score=%v", r.Sentiment, r.Score), start)
		}
		return pass(mod, "empty_is_neutral", start)
	}))

	return results
}

func testAnnotate() []testResult {
	const mod = "annotate"
	var results []testResult

	results = append(results, safeRun(mod, "flavor_extraction", func() testResult {
		start := time.Now()
		flavors := annotate.Flavors(textPositive)
		if !containsTerm(flavors, "spicy") {
			return fail(mod, "flavor_extraction", fmt.Sprintf("flavors=%v, want spicy", flavors), start)
		}
		return pass(mod, "flavor_extraction", start)
	}))

	results = append(results, safeRun(mod, "dish_extraction", func() testResult {
		start := time.Now()
		dishes := annotate.Dishes(textPositive)
		if !containsTerm(dishes, "ramen") {
			return fail(mod, "dish_extraction", fmt.Sprintf("dishes=%v, want ramen", dishes), start)
		}
		return pass(mod, "dish_extraction", start)
	}))

	results = append(results, safeRun(mod, "contextual_dish_after_trigger", func() testResult {
		start := time.Now()
		dishes := annotate.Dishes(textPositive)
		if !containsTerm(dishes, "pork belly bao") {
			return fail(mod, "contextual_dish_after_trigger",
				fmt.Sprintf("dishes=%v, want pork belly bao", dishes), start)
		}
		return pass(mod, "contextual_dish_after_trigger", start)
	}))

	results = append(results, safeRun(mod, "span_offset_invariant", func() testResult {
		start := time.Now()
		for _, text := range []string{textPositive, textMixed, textAccented, textBroken} {
			r := annotate.Annotate(text)
			for _, sp := range append(r.Flavors, r.Dishes...) {
				if text[sp.Start:sp.End] != sp.Text {
					return fail(mod, "span_offset_invariant",
						fmt.Sprintf("text[%d:%d] != span.Text=%q", sp.Start, sp.End, sp.Text), start)
				}
			}
		}
		return pass(mod, "span_offset_invariant", start)
	}))

	results = append(results, safeRun(mod, "diacritics_folded", func() testResult {
		start := time.Now()
		dishes := annotate.Dishes(textAccented)
		if !containsTerm(dishes, "jalapeno poppers") && !containsTerm(dishes, "creme brulee") {
			return fail(mod, "diacritics_folded", fmt.Sprintf("dishes=%v", dishes), start)
		}
		return pass(mod, "diacritics_folded", start)
	}))

	return results
}

func testReview() []testResult {
	const mod = "review"
	var results []testResult

	results = append(results, safeRun(mod, "decode_venues", func() testResult {
		start := time.Now()
		venues, err := review.DecodeVenues([]byte(venuesJSON))
		if err != nil {
			return fail(mod, "decode_venues", err.Error(), start)
		}
		if len(venues) != 3 {
			return fail(mod, "decode_venues", fmt.Sprintf("decoded %d venues, want 3", len(venues)), start)
		}
		return pass(mod, "decode_venues", start)
	}))

	results = append(results, safeRun(mod, "analyze_enriches_reviews", func() testResult {
		start := time.Now()
		venues, err := review.DecodeVenues([]byte(venuesJSON))
		if err != nil {
			return fail(mod, "analyze_enriches_reviews", err.Error(), start)
		}
		analyzed := review.AnalyzeVenues(venues)
		for _, v := range analyzed {
			for _, r := range v.Reviews {
				if r.ExtractedFlavors == nil || r.ExtractedDishes == nil {
					return fail(mod, "analyze_enriches_reviews",
						fmt.Sprintf("venue %s: nil extraction slices", v.ID), start)
				}
			}
		}
		first := analyzed[0].Reviews[0]
		if first.SentimentScore <= 0 {
			return fail(mod, "analyze_enriches_reviews",
				fmt.Sprintf("positive review scored %v", first.SentimentScore), start)
		}
		return pass(mod, "analyze_enriches_reviews", start)
	}))

	results = append(results, safeRun(mod, "analyze_does_not_mutate", func() testResult {
		start := time.Now()
		venues, _ := review.DecodeVenues([]byte(venuesJSON))
		review.AnalyzeVenues(venues)
		if venues[0].Reviews[0].SentimentScore != 0 {
			return fail(mod, "analyze_does_not_mutate", "input venue was modified", start)
		}
		return pass(mod, "analyze_does_not_mutate", start)
	}))

	return results
}

func testRank() []testResult {
	const mod = "rank"
	var results []testResult

	ranked := func(query string) []review.Venue {
		venues, err := review.DecodeVenues([]byte(venuesJSON))
		if err != nil {
			panic(err)
		}
		return rank.Rank(review.AnalyzeVenues(venues), query)
	}

	results = append(results, safeRun(mod, "query_match_ranks_first", func() testResult {
		start := time.Now()
		got := ranked("spicy ramen")
		if got[0].ID != "v1" {
			return fail(mod, "query_match_ranks_first", fmt.Sprintf("top venue %s, want v1", got[0].ID), start)
		}
		return pass(mod, "query_match_ranks_first", start)
	}))

	results = append(results, safeRun(mod, "scores_descending", func() testResult {
		start := time.Now()
		got := ranked("tacos")
		for i := 1; i < len(got); i++ {
			if got[i-1].MatchScore < got[i].MatchScore {
				return fail(mod, "scores_descending",
					fmt.Sprintf("score[%d]=%v < score[%d]=%v", i-1, got[i-1].MatchScore, i, got[i].MatchScore), start)
			}
		}
		return pass(mod, "scores_descending", start)
	}))

	results = append(results, safeRun(mod, "unknown_query_still_ranks", func() testResult {
		start := time.Now()
		got := ranked("zzzznothing")
		if len(got) != 3 {
			return fail(mod, "unknown_query_still_ranks", fmt.Sprintf("got %d venues", len(got)), start)
		}
		return pass(mod, "unknown_query_still_ranks", start)
	}))

	results = append(results, safeRun(mod, "matching_reviews_capped", func() testResult {
		start := time.Now()
		venues, _ := review.DecodeVenues([]byte(venuesJSON))
		matching := rank.MatchingReviews(review.AnalyzeVenues(venues), "ramen")
		for id, reviews := range matching {
			if len(reviews) > 3 {
				return fail(mod, "matching_reviews_capped",
					fmt.Sprintf("venue %s has %d matches", id, len(reviews)), start)
			}
			for i := 1; i < len(reviews); i++ {
				if reviews[i-1].Time < reviews[i].Time {
					return fail(mod, "matching_reviews_capped", "matches not newest-first", start)
				}
			}
		}
		return pass(mod, "matching_reviews_capped", start)
	}))

	return results
}

// testPipeline chains the modules end to end the way a caller would:
// decode, analyze, rank, then fetch matching reviews for the winner.
func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	results = append(results, safeRun(mod, "decode_analyze_rank_match", func() testResult {
		start := time.Now()
		venues, err := review.DecodeVenues([]byte(venuesJSON))
		if err != nil {
			return fail(mod, "decode_analyze_rank_match", err.Error(), start)
		}
		analyzed := review.AnalyzeVenues(venues)
		ranked := rank.Rank(analyzed, "spicy ramen")
		matching := rank.MatchingReviews(ranked, "spicy ramen")

		if ranked[0].ID != "v1" {
			return fail(mod, "decode_analyze_rank_match",
				fmt.Sprintf("top venue %s, want v1", ranked[0].ID), start)
		}
		top := matching[ranked[0].ID]
		if len(top) == 0 {
			return fail(mod, "decode_analyze_rank_match", "winner has no matching reviews", start)
		}
		if !strings.Contains(strings.ToLower(top[0].Text), "ramen") {
			return fail(mod, "decode_analyze_rank_match",
				fmt.Sprintf("first match %q does not mention the query", truncate(top[0].Text, 60)), start)
		}
		return pass(mod, "decode_analyze_rank_match", start)
	}))

	results = append(results, safeRun(mod, "raw_text_to_score", func() testResult {
		start := time.Now()
		r := review.Analyze(review.Review{Text: textPositive, Time: 1})
		if r.SentimentScore <= 0 {
			return fail(mod, "raw_text_to_score", fmt.Sprintf("sentiment %v", r.SentimentScore), start)
		}
		if len(r.ExtractedDishes) == 0 {
			return fail(mod, "raw_text_to_score", "no dishes extracted", start)
		}
		return pass(mod, "raw_text_to_score", start)
	}))

	return results
}

// testConcurrent hammers every module from concurrent goroutines. The
// packages promise safety for concurrent use; run with -race to verify.
func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_modules_parallel", func() testResult {
		start := time.Now()
		texts := []string{textPositive, textNegative, textMixed, textAccented, textBroken}

		var wg sync.WaitGroup
		errCh := make(chan string, concWorkers)
		for w := range concWorkers {
			wg.Add(1)
			go func(seed int) {
				defer wg.Done()
				defer func() {
					if p := recover(); p != nil {
						select {
						case errCh <- fmt.Sprintf("worker %d: PANIC: %v", seed, p):
						default:
						}
					}
				}()
				for i := range concIter {
					text := texts[(seed+i)%len(texts)]
					_ = tokenizer.Words(text)
					_ = sentiment.Score(text)
					_ = annotate.Annotate(text)
					venues, err := review.DecodeVenues([]byte(venuesJSON))
					if err != nil {
						select {
						case errCh <- fmt.Sprintf("worker %d: decode: %v", seed, err):
						default:
						}
						return
					}
					_ = rank.Rank(review.AnalyzeVenues(venues), "spicy ramen")
				}
			}(w)
		}
		wg.Wait()
		close(errCh)

		if msg, ok := <-errCh; ok {
			return fail(mod, "all_modules_parallel", msg, start)
		}
		return pass(mod, "all_modules_parallel", start)
	}))

	results = append(results, safeRun(mod, "deterministic_under_concurrency", func() testResult {
		start := time.Now()
		want := sentiment.Score(textPositive)

		var wg sync.WaitGroup
		mismatch := make(chan float64, 1)
		for range concWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range concIter {
					if got := sentiment.Score(textPositive); got != want {
						select {
						case mismatch <- got:
						default:
						}
						return
					}
				}
			}()
		}
		wg.Wait()
		close(mismatch)

		if got, ok := <-mismatch; ok {
			return fail(mod, "deterministic_under_concurrency",
				fmt.Sprintf("score %v != %v", got, want), start)
		}
		return pass(mod, "deterministic_under_concurrency", start)
	}))

	return results
}

// testCorpus runs the whole stack over the concatenated corpus to shake out
// interactions that short inputs miss.
func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	corpus := strings.Join([]string{
		textPositive, textNegative, textMixed, textNeutral, textAccented, textBroken,
	}, "\n\n")

	results = append(results, safeRun(mod, "tokenizer_full_corpus", func() testResult {
		start := time.Now()
		tokens := tokenizer.WordTokens(corpus)
		var sb strings.Builder
		for _, t := range tokens {
			sb.WriteString(t.Text)
		}
		if sb.String() != corpus {
			return fail(mod, "tokenizer_full_corpus", "reconstruction failed", start)
		}
		return pass(mod, "tokenizer_full_corpus", start)
	}))

	results = append(results, safeRun(mod, "sentiment_full_corpus", func() testResult {
		start := time.Now()
		r := sentiment.Analyze(corpus)
		if r.Total == 0 {
			return fail(mod, "sentiment_full_corpus", "sentiment analyzed 0 words", start)
		}
		return pass(mod, "sentiment_full_corpus", start)
	}))

	results = append(results, safeRun(mod, "annotate_full_corpus", func() testResult {
		start := time.Now()
		r := annotate.Annotate(corpus)
		if len(r.Flavors) == 0 || len(r.Dishes) == 0 {
			return fail(mod, "annotate_full_corpus",
				fmt.Sprintf("%d flavors, %d dishes", len(r.Flavors), len(r.Dishes)), start)
		}
		for _, sp := range append(r.Flavors, r.Dishes...) {
			if corpus[sp.Start:sp.End] != sp.Text {
				return fail(mod, "annotate_full_corpus", "offset invariant broken", start)
			}
		}
		return pass(mod, "annotate_full_corpus", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testTokenizer,
		testLexicon,
		testSentiment,
		testAnnotate,
		testReview,
		testRank,
		testPipeline,
		testConcurrent,
		testCorpus,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  hungr-ai E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Modules: %d\n", moduleCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	// Per-module sections.
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	// Failures section.
	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	// Summary.
	totalTests := len(results)
	totalPassed := 0
	totalFailed := 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		totalTests, totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d modules, %d suites)", moduleCount, suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}

// Command smoketest runs the full review pipeline over a venues JSON file
// and prints the ranked result. It is a manual exercise tool for eyeballing
// scores, extraction quality, and throughput on real exported data.
//
// Usage:
//
//	smoketest [-weights weights.yaml] [-top n] <venues.json> <query>
//
// The venues file holds an array of venue objects in the wire format the
// review package decodes. Weights default to rank.DefaultWeights and can be
// overridden from a YAML file with recency/sentiment/rating/match keys.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kevinskim93/hungr-ai/rank"
	"github.com/kevinskim93/hungr-ai/review"
)

const (
	maxWorkers = 4
	defaultTop = 10
)

type stats struct {
	mu             sync.Mutex
	venuesAnalyzed int
	reviewsScored  int
	textBytes      int64
	flavorSpans    int
	dishSpans      int
	positive       int
	negative       int
	neutral        int
}

func main() {
	weightsPath := flag.String("weights", "", "YAML file overriding the ranking weights")
	top := flag.Int("top", defaultTop, "number of ranked venues to print")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-weights weights.yaml] [-top n] <venues.json> <query>\n", os.Args[0])
		os.Exit(1)
	}
	venuesPath, query := flag.Arg(0), flag.Arg(1)

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	weights, err := loadWeights(*weightsPath)
	if err != nil {
		logger.Fatal("loading weights", zap.String("path", *weightsPath), zap.Error(err))
	}

	raw, err := os.ReadFile(filepath.Clean(venuesPath))
	if err != nil {
		logger.Fatal("reading venues file", zap.String("path", venuesPath), zap.Error(err))
	}
	venues, err := review.DecodeVenues(raw)
	if err != nil {
		logger.Fatal("decoding venues", zap.String("path", venuesPath), zap.Error(err))
	}

	logger.Info("loaded venues",
		zap.Int("venues", len(venues)),
		zap.Int64("bytes", int64(len(raw))),
		zap.String("query", query))

	start := time.Now()
	st := &stats{}

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for i := range venues {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(v *review.Venue) {
			defer wg.Done()
			defer func() { <-semaphore }()
			*v = review.AnalyzeVenue(*v)
			recordVenue(st, *v)
		}(&venues[i])
	}
	wg.Wait()

	ranked := rank.RankWeighted(venues, query, weights)
	matching := rank.MatchingReviews(ranked, query)

	logger.Info("pipeline complete",
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
		zap.Int("reviews", st.reviewsScored))

	printStats(st, weights)
	printRanked(ranked, matching, *top)
}

// loadWeights reads ranking weights from a YAML file, or returns the
// defaults when no path is given.
func loadWeights(path string) (rank.Weights, error) {
	if path == "" {
		return rank.DefaultWeights, nil
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return rank.Weights{}, err
	}
	w := rank.DefaultWeights
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return rank.Weights{}, err
	}
	return w, nil
}

func recordVenue(st *stats, v review.Venue) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.venuesAnalyzed++
	for _, r := range v.Reviews {
		st.reviewsScored++
		st.textBytes += int64(len(r.Text))
		st.flavorSpans += len(r.ExtractedFlavors)
		st.dishSpans += len(r.ExtractedDishes)
		switch {
		case r.SentimentScore > 0:
			st.positive++
		case r.SentimentScore < 0:
			st.negative++
		default:
			st.neutral++
		}
	}
}

func printStats(st *stats, w rank.Weights) {
	fmt.Printf("Venues analyzed:   %d\n", st.venuesAnalyzed)
	fmt.Printf("Reviews scored:    %d\n", st.reviewsScored)
	fmt.Printf("Review text bytes: %d\n", st.textBytes)
	fmt.Printf("Flavor spans:      %d\n", st.flavorSpans)
	fmt.Printf("Dish spans:        %d\n", st.dishSpans)
	fmt.Printf("Sentiment split:   +%d / -%d / =%d\n", st.positive, st.negative, st.neutral)
	fmt.Printf("Weights:           recency=%.2f sentiment=%.2f rating=%.2f match=%.2f\n",
		w.Recency, w.Sentiment, w.Rating, w.Match)
	fmt.Println()
}

func printRanked(ranked []review.Venue, matching map[string][]review.Review, top int) {
	if top > len(ranked) {
		top = len(ranked)
	}
	for i := 0; i < top; i++ {
		v := ranked[i]
		fmt.Printf("%2d. %-40s score=%.4f rating=%.1f reviews=%d\n",
			i+1, v.Name, v.MatchScore, v.Rating, len(v.Reviews))
		for _, r := range matching[v.ID] {
			fmt.Printf("      %q\n", truncate(r.Text, 72))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

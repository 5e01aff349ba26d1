package annotate

import (
	"flag"
	"os"
	"testing"

	"github.com/goccy/go-json"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase holds one golden annotation case. Flavors and Dishes are the
// folded convenience forms, which keep the file readable.
type goldenCase struct {
	Name    string   `json:"name"`
	Input   string   `json:"input"`
	Flavors []string `json:"flavors"`
	Dishes  []string `json:"dishes"`
}

const goldenPath = "../data/golden/annotate.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("annotate.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			compare(t, "Flavors", tc.Flavors, Flavors(tc.Input))
			compare(t, "Dishes", tc.Dishes, Dishes(tc.Input))
		})
	}
}

func compare(t *testing.T, label string, want, got []string) {
	t.Helper()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if len(got) != len(want) {
		t.Errorf("%s: got %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %q, want %q", label, i, got[i], want[i])
		}
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		tc.Flavors = Flavors(tc.Input)
		tc.Dishes = Dishes(tc.Input)
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}

	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/annotate.json")
}

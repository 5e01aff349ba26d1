package annotate

import (
	"strings"
	"testing"
)

// compareSpans fails unless got matches want exactly, and checks the byte
// offset invariant text[s.Start:s.End] == s.Text for every span.
func compareSpans(t *testing.T, text string, want, got []Span) {
	t.Helper()
	for i, s := range got {
		if sub := text[s.Start:s.End]; sub != s.Text {
			t.Errorf("span %d offset invariant broken: text[%d:%d]=%q, Text=%q",
				i, s.Start, s.End, sub, s.Text)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d spans, want %d\n  got:  %v\n  want: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d:\n  got:  %s\n  want: %s", i, got[i], want[i])
		}
	}
}

func TestAnnotateFlavors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "single flavor",
			input: "The spicy ramen was amazing",
			want:  []Span{{Text: "spicy", Start: 4, End: 9}},
		},
		{
			name:  "multiple flavors first-seen order",
			input: "creamy, rich and smoky",
			want: []Span{
				{Text: "creamy", Start: 0, End: 6},
				{Text: "rich", Start: 8, End: 12},
				{Text: "smoky", Start: 17, End: 22},
			},
		},
		{
			name:  "duplicate collapses to first occurrence",
			input: "spicy and then more SPICY",
			want:  []Span{{Text: "spicy", Start: 0, End: 5}},
		},
		{
			name:  "case insensitive whole word",
			input: "Crunchy outside, tender inside",
			want: []Span{
				{Text: "Crunchy", Start: 0, End: 7},
				{Text: "tender", Start: 17, End: 23},
			},
		},
		{
			name:  "substring is not a word match",
			input: "hotel dryer richmond",
			want:  nil,
		},
		{
			name:  "no flavors",
			input: "We waited twenty minutes",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.input)
			compareSpans(t, tt.input, tt.want, got.Flavors)
		})
	}
}

func TestAnnotateDishesLexicon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "single dish",
			input: "The spicy ramen was amazing",
			want:  []Span{{Text: "ramen", Start: 10, End: 15}},
		},
		{
			name:  "plural folds to lexicon entry",
			input: "Best burgers in town",
			want:  []Span{{Text: "burgers", Start: 5, End: 12}},
		},
		{
			name:  "two-word phrase",
			input: "The ice cream here is great",
			want:  []Span{{Text: "ice cream", Start: 4, End: 13}},
		},
		{
			name:  "phrase must not span punctuation",
			input: "ice, cream",
			want:  nil,
		},
		{
			name:  "dedupe keeps first",
			input: "Pizza, pizza and more pizza",
			want:  []Span{{Text: "Pizza", Start: 0, End: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.input)
			compareSpans(t, tt.input, tt.want, got.Dishes)
		})
	}
}

func TestAnnotateDishesContextual(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // folded dish texts, Dishes() convenience form
	}{
		{
			name:  "trigger verb with determiner",
			input: "I ordered the pork belly bao and loved it",
			want:  []string{"pork belly bao"},
		},
		{
			name:  "trigger without determiner",
			input: "We tried tonkotsu broth yesterday",
			want:  []string{"tonkotsu broth"},
		},
		{
			name:  "phrase ends at function word",
			input: "She recommend the bibimbap for lunch",
			want:  []string{"lunch", "bibimbap"},
		},
		{
			name:  "lexicon matches precede contextual",
			input: "Great pizza. We also tried the garlic knots",
			want:  []string{"pizza", "garlic knots"},
		},
		{
			name:  "contextual duplicate of lexicon match removed",
			input: "Ramen heaven! I ordered ramen twice",
			want:  []string{"ramen"},
		},
		{
			name:  "trigger at end of text yields nothing",
			input: "It was the best meal we ever had",
			want:  nil,
		},
		{
			name:  "trigger followed by punctuation yields nothing",
			input: "We ordered, then waited an hour",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dishes(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Dishes(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Dishes[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnnotateEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t ", "!!!", "123 456"} {
		got := Annotate(input)
		if len(got.Flavors) != 0 || len(got.Dishes) != 0 {
			t.Errorf("Annotate(%q) = %+v, want empty result", input, got)
		}
	}
}

func TestAnnotateIdempotent(t *testing.T) {
	const input = "Loved the juicy pulled pork sandwich, very smoky"
	first := Annotate(input)
	for i := 0; i < 5; i++ {
		again := Annotate(input)
		if len(again.Flavors) != len(first.Flavors) || len(again.Dishes) != len(first.Dishes) {
			t.Fatalf("run %d: Annotate diverged: %+v vs %+v", i, again, first)
		}
		for j := range first.Flavors {
			if again.Flavors[j] != first.Flavors[j] {
				t.Errorf("run %d: Flavors[%d] = %v, want %v", i, j, again.Flavors[j], first.Flavors[j])
			}
		}
		for j := range first.Dishes {
			if again.Dishes[j] != first.Dishes[j] {
				t.Errorf("run %d: Dishes[%d] = %v, want %v", i, j, again.Dishes[j], first.Dishes[j])
			}
		}
	}
}

func TestConvenienceFolding(t *testing.T) {
	got := Flavors("SPICY and Zesty")
	want := []string{"spicy", "zesty"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Flavors = %v, want %v", got, want)
	}
}

func TestSingular(t *testing.T) {
	tests := []struct{ in, want string }{
		{"burgers", "burger"},
		{"tacos", "taco"},
		{"noodles", "noodle"},
		{"sandwiches", "sandwich"},
		{"dishes", "dish"},
		{"glass", "glass"},
		{"its", "its"},
		{"ramen", "ramen"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := singular(tt.in); got != tt.want {
			t.Errorf("singular(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

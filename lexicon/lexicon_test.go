package lexicon

import "testing"

func TestIsFlavor(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"spicy", true},
		{"SPICY", true},
		{"creamy", true},
		{"umami", true},
		{"delicious", false}, // sentiment word, not a flavor descriptor
		{"ramen", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsFlavor(tt.term); got != tt.want {
			t.Errorf("IsFlavor(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestIsDish(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"ramen", true},
		{"Pizza", true},
		{"ice cream", true},
		{"Ice Cream", true},
		{"side dish", true},
		{"spicy", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsDish(tt.term); got != tt.want {
			t.Errorf("IsDish(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestEnumerations(t *testing.T) {
	flavors := Flavors()
	if len(flavors) < 30 {
		t.Errorf("len(Flavors()) = %d, want >= 30", len(flavors))
	}
	if flavors[0] != "sweet" {
		t.Errorf("Flavors()[0] = %q, want %q (file order preserved)", flavors[0], "sweet")
	}

	dishes := Dishes()
	if len(dishes) < 30 {
		t.Errorf("len(Dishes()) = %d, want >= 30", len(dishes))
	}
	if dishes[0] != "pizza" {
		t.Errorf("Dishes()[0] = %q, want %q (file order preserved)", dishes[0], "pizza")
	}

	// Every enumerated term must pass its own membership test.
	for _, f := range flavors {
		if !IsFlavor(f) {
			t.Errorf("IsFlavor(%q) = false for enumerated flavor", f)
		}
	}
	for _, d := range dishes {
		if !IsDish(d) {
			t.Errorf("IsDish(%q) = false for enumerated dish", d)
		}
	}
}

func TestEnumerationsReturnCopies(t *testing.T) {
	a := Dishes()
	a[0] = "mutated"
	b := Dishes()
	if b[0] == "mutated" {
		t.Error("Dishes() returned a shared backing array; want a copy")
	}
}

func TestMaxDishPhraseWords(t *testing.T) {
	if got := MaxDishPhraseWords(); got != 2 {
		t.Errorf("MaxDishPhraseWords() = %d, want 2", got)
	}
}

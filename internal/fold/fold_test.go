package fold

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already folded", "spicy ramen", "spicy ramen"},
		{"uppercase ascii", "Spicy RAMEN", "spicy ramen"},
		{"french dessert", "Crème Brûlée", "creme brulee"},
		{"spanish pepper", "jalapeño", "jalapeno"},
		{"acai bowl", "açaí", "acai"},
		{"crepe", "crêpe", "crepe"},
		{"mixed", "Pho GÀ", "pho ga"},
		{"non-latin passthrough", "寿司", "寿司"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFoldIdempotent(t *testing.T) {
	inputs := []string{"Crème Brûlée", "JALAPEÑO poppers", "plain text"}
	for _, in := range inputs {
		once := Fold(in)
		if twice := Fold(once); twice != once {
			t.Errorf("Fold(Fold(%q)) = %q, want %q", in, twice, once)
		}
	}
}

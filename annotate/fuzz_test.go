package annotate

import (
	"strings"
	"testing"
)

func FuzzAnnotate(f *testing.F) {
	f.Add("The spicy ramen was amazing")
	f.Add("ordered the pork belly bao")
	f.Add("")
	f.Add("ice, cream")
	f.Add("Crème brûlée!!! https://example.com")
	f.Add("pizza pizza pizza")

	f.Fuzz(func(t *testing.T, s string) {
		res := Annotate(s)

		// Byte offset invariant holds for every span.
		for _, span := range res.Flavors {
			checkSpan(t, s, span)
		}
		for _, span := range res.Dishes {
			checkSpan(t, s, span)
		}

		// Convenience views agree in length with the structured result.
		if got := Flavors(s); len(got) != len(res.Flavors) {
			t.Errorf("Flavors len %d, Annotate len %d", len(got), len(res.Flavors))
		}
		if got := Dishes(s); len(got) != len(res.Dishes) {
			t.Errorf("Dishes len %d, Annotate len %d", len(got), len(res.Dishes))
		}

		// Folded texts are deduplicated within each category.
		seen := make(map[string]bool)
		for _, d := range Dishes(s) {
			if seen[d] {
				t.Errorf("duplicate dish %q", d)
			}
			seen[d] = true
		}
	})
}

func checkSpan(t *testing.T, s string, span Span) {
	t.Helper()
	if span.Start < 0 || span.End > len(s) || span.Start >= span.End {
		t.Errorf("span bounds invalid: %s (input len %d)", span, len(s))
		return
	}
	if got := s[span.Start:span.End]; got != span.Text {
		t.Errorf("offset invariant broken: s[%d:%d]=%q, Text=%q",
			span.Start, span.End, got, span.Text)
	}
	if strings.TrimSpace(span.Text) == "" {
		t.Errorf("blank span: %s", span)
	}
}

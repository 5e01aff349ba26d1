// Package fold produces canonical match keys for lexicon lookups:
// lowercase with Latin diacritics stripped, so "Crème Brûlée" and
// "creme brulee" fold to the same key.
package fold

import (
	"strings"
	"unicode"
)

// diacriticToASCII maps precomposed Latin letters with diacritics to their
// ASCII base letter. Covers Latin-1 Supplement and Latin Extended-A, the
// ranges that appear in menu and dish spellings (jalapeño, açaí, crêpe).
var diacriticToASCII = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ĕ': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i', 'ĩ': 'i', 'ī': 'i', 'į': 'i', 'ı': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'ō': 'o', 'ő': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u', 'ũ': 'u', 'ū': 'u', 'ů': 'u', 'ű': 'u',
	'ç': 'c', 'ć': 'c', 'č': 'c',
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'ý': 'y', 'ÿ': 'y',
	'š': 's', 'ś': 's', 'ş': 's',
	'ž': 'z', 'ź': 'z', 'ż': 'z',
	'ł': 'l', 'ĺ': 'l', 'ľ': 'l',
	'ř': 'r', 'ŕ': 'r',
	'ť': 't', 'ţ': 't',
	'ď': 'd', 'đ': 'd',
	'ğ': 'g', 'ģ': 'g',
	'æ': 'a', 'œ': 'o',
	'ß': 's',
}

// Fold returns the canonical match key for s: lowercase, Latin diacritics
// replaced by their ASCII base letters. ASCII input takes a fast path that
// avoids allocation when already folded.
func Fold(s string) string {
	if isFoldedASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		r = unicode.ToLower(r)
		if base, ok := diacriticToASCII[r]; ok {
			r = base
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isFoldedASCII reports whether s is pure ASCII with no uppercase letters,
// i.e. already its own fold key.
func isFoldedASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

package gazetteer

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Normalize maps s to its canonical lookup key: lowercased, diacritics
// folded, every run of characters outside [a-z0-9] collapsed to a single
// space, and leading/trailing space trimmed. Normalize is pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s) for all s.
//
// It is applied to dictionary entries and reference records at build
// time, to prefixes before comparison, and to every candidate span the
// resolver considers.
func Normalize(s string) string {
	folded := foldDiacritics(strings.ToLower(s))
	return collapseToAlnum(folded)
}

// foldDiacritics transliterates Vietnamese (and other non-ASCII) letters
// down to their closest ASCII form, the same way the teacher's text
// normalizer strips accents before key comparison.
func foldDiacritics(s string) string {
	return unidecode.Unidecode(s)
}

// collapseToAlnum turns every character outside [a-z0-9] into a space,
// collapses runs of spaces into one, and trims the ends.
func collapseToAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	wrote := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && wrote {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			wrote = true
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// Package noise synthesizes OCR-style corrupted address strings from
// clean reference records, for property and golden tests that need a
// supply of realistic noisy input rather than hand-written fixtures.
// It has no role outside tests.
//
// Grounded on the corruption and random-joining routines of the Python
// generator this module's specification was distilled from: accent
// stripping, random casing, occasional character drops and
// duplication, and separator choice that depends on whether the next
// joined part is the province.
package noise

import (
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vnaddress/resolver/internal/gazetteer"
)

// RemoveAccents strips combining diacritical marks, leaving the base
// Latin letters. Unlike gazetteer.Normalize, it keeps original case and
// punctuation; it exists to produce realistic noisy input, not lookup
// keys.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RandomCase returns s with every character independently upper- or
// lower-cased, simulating OCR or keyboard-layout case noise.
func RandomCase(r *rand.Rand, s string) string {
	runes := []rune(s)
	for i, c := range runes {
		if r.Float64() < 0.5 {
			runes[i] = unicode.ToUpper(c)
		} else {
			runes[i] = unicode.ToLower(c)
		}
	}
	return string(runes)
}

// Corrupt applies a random combination of accent stripping, case
// randomization, a single character drop, and whole-string duplication
// to s, modeling the kinds of noise the resolver must tolerate.
func Corrupt(r *rand.Rand, s string) string {
	t := s
	if r.Float64() < 0.7 {
		t = RemoveAccents(t)
	}
	t = RandomCase(r, t)
	runes := []rune(t)
	if len(runes) > 3 && r.Float64() < 0.3 {
		i := r.Intn(len(runes))
		runes = append(runes[:i], runes[i+1:]...)
		t = string(runes)
	}
	if r.Float64() < 0.2 {
		t = t + " " + t
	}
	return t
}

// separator picks a join separator between two address parts. nextLevel
// is the level of the part being appended; a province boundary favors a
// comma more strongly than a ward/district boundary does, mirroring how
// people actually punctuate addresses.
func separator(r *rand.Rand, nextLevel gazetteer.Level) string {
	roll := r.Float64()
	if nextLevel == gazetteer.LevelProvince {
		switch {
		case roll < 0.75:
			return ", "
		case roll < 0.92:
			return " "
		default:
			return " - "
		}
	}
	switch {
	case roll < 0.55:
		return ", "
	case roll < 0.95:
		return " "
	default:
		return " - "
	}
}

// JoinPartsRandomly concatenates parts in order, choosing a separator
// before each part (other than the first) based on that part's level.
func JoinPartsRandomly(r *rand.Rand, parts []string, levels []gazetteer.Level) string {
	if len(parts) == 0 {
		return ""
	}
	out := parts[0]
	for i := 1; i < len(parts); i++ {
		sep := separator(r, levels[i])
		out = strings.TrimRight(out, " ") + sep + strings.TrimLeft(parts[i], " ")
	}
	return out
}

// Case is one synthetic test case: a noisy input string and the clean
// ground-truth triple it was derived from.
type Case struct {
	Input string
	Want  gazetteer.Triple
}

// Generate builds one synthetic case from a clean reference record.
// Each level is independently included with probability 0.9; if none
// are chosen, province is included anyway so the case is never empty.
// Included parts are corrupted and joined in ward, district, province
// order, matching how Vietnamese addresses are conventionally written
// street-first.
func Generate(r *rand.Rand, rec gazetteer.ReferenceRecord) Case {
	type part struct {
		name  string
		level gazetteer.Level
	}
	candidates := []part{
		{rec.Ward, gazetteer.LevelWard},
		{rec.District, gazetteer.LevelDistrict},
		{rec.Province, gazetteer.LevelProvince},
	}

	var parts []part
	for _, c := range candidates {
		if r.Float64() < 0.9 {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, candidates[2])
	}

	want := gazetteer.Triple{}
	names := make([]string, len(parts))
	levels := make([]gazetteer.Level, len(parts))
	for i, p := range parts {
		names[i] = Corrupt(r, p.name)
		levels[i] = p.level
		switch p.level {
		case gazetteer.LevelWard:
			want.Ward = p.name
		case gazetteer.LevelDistrict:
			want.District = p.name
		case gazetteer.LevelProvince:
			want.Province = p.name
		}
	}

	return Case{Input: JoinPartsRandomly(r, names, levels), Want: want}
}

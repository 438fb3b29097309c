package gazetteer

import (
	_ "embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// prefixEntry is one recognized administrative prefix, normalized, and
// the level it denotes.
type prefixEntry struct {
	key   string
	level Level
}

//go:embed data/prefixes.yaml
var prefixesYAML []byte

// prefixRules is the shape of data/prefixes.yaml: one list of raw
// prefix tokens per administrative level.
type prefixRules struct {
	Province []string `yaml:"province"`
	District []string `yaml:"district"`
	Ward     []string `yaml:"ward"`
}

var prefixTable = buildPrefixTable()

// buildPrefixTable loads the recognized prefixes from the embedded YAML
// rules file: full Vietnamese words, one- or two-letter abbreviations,
// with or without a trailing dot. Entries are normalized and
// deduplicated (normalization already strips a trailing dot, so "tp."
// and "tp" collapse to one entry), then sorted longest-key-first so a
// more specific prefix is always tried before a shorter one that could
// also match.
func buildPrefixTable() []prefixEntry {
	var rules prefixRules
	if err := yaml.Unmarshal(prefixesYAML, &rules); err != nil {
		panic("gazetteer: malformed embedded prefixes.yaml: " + err.Error())
	}

	groups := []struct {
		prefixes []string
		level    Level
	}{
		{rules.Province, LevelProvince},
		{rules.District, LevelDistrict},
		{rules.Ward, LevelWard},
	}

	seen := make(map[string]bool)
	var entries []prefixEntry
	for _, g := range groups {
		for _, raw := range g.prefixes {
			k := Normalize(raw)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			entries = append(entries, prefixEntry{key: k, level: g.level})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].key) > len(entries[j].key)
	})
	return entries
}

// classifyPrefix scans a normalized span against the prefix table,
// longest key first. A prefix matches only when span begins with the
// prefix key followed by whitespace or end-of-string, so a bare letter
// like "t" never matches the leading letter of an unrelated token such
// as "tan". It returns the matched length (including the separating
// space, if any consumed) and the recognized level, or (0, LevelNone).
func classifyPrefix(span string) (int, Level) {
	for _, e := range prefixTable {
		if !strings.HasPrefix(span, e.key) {
			continue
		}
		rest := span[len(e.key):]
		if rest == "" {
			return len(e.key), e.level
		}
		if rest[0] == ' ' {
			return len(e.key) + 1, e.level
		}
	}
	return 0, LevelNone
}

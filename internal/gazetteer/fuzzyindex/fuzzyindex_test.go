package fuzzyindex

import (
	"sort"
	"testing"

	"github.com/agnivade/levenshtein"
)

var testKeys = []string{
	"ha noi", "hai phong", "ho chi minh", "da nang", "can tho",
	"long binh", "nga thanh", "nga son", "phu my", "tra lan",
	"con cuong", "thu dau mot", "go cong tay", "tien giang",
}

func sortMatches(m []Match) []Match {
	out := append([]Match(nil), m...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Distance < out[j].Distance
	})
	return out
}

func bruteForce(keys []string, query string, maxDist int) []Match {
	var out []Match
	for _, k := range keys {
		d := levenshtein.ComputeDistance(query, k)
		if d <= maxDist {
			out = append(out, Match{Key: k, Distance: d})
		}
	}
	return sortMatches(out)
}

func TestTrieAndBKTreeAgreeWithBruteForce(t *testing.T) {
	trie := NewTrie(testKeys)
	bk := NewBKTree(testKeys)

	cases := []struct {
		query   string
		maxDist int
	}{
		{"ha noi", 0},
		{"ha nio", 1},
		{"nga thanh", 1},
		{"ngathanh", 2},
		{"tra lan", 0},
		{"tralan", 2},
		{"xyzxyz", 2},
		{"con cuong", 3},
	}

	for _, c := range cases {
		want := bruteForce(testKeys, c.query, c.maxDist)
		gotTrie := sortMatches(trie.Search(c.query, c.maxDist))
		gotBK := sortMatches(bk.Search(c.query, c.maxDist))

		if !matchesEqual(want, gotTrie) {
			t.Errorf("trie.Search(%q, %d) = %v, want %v", c.query, c.maxDist, gotTrie, want)
		}
		if !matchesEqual(want, gotBK) {
			t.Errorf("bktree.Search(%q, %d) = %v, want %v", c.query, c.maxDist, gotBK, want)
		}
	}
}

func matchesEqual(a, b []Match) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Every key inserted at build time must be findable with maxDist = 0.
func TestEveryKeyFindableAtZeroDistance(t *testing.T) {
	trie := NewTrie(testKeys)
	bk := NewBKTree(testKeys)
	for _, k := range testKeys {
		if len(trie.Search(k, 0)) == 0 {
			t.Errorf("trie: key %q not findable at distance 0", k)
		}
		if len(bk.Search(k, 0)) == 0 {
			t.Errorf("bktree: key %q not findable at distance 0", k)
		}
	}
}

func TestNegativeDistanceReturnsNothing(t *testing.T) {
	trie := NewTrie(testKeys)
	bk := NewBKTree(testKeys)
	if got := trie.Search("ha noi", -1); got != nil {
		t.Errorf("trie.Search with maxDist<0 = %v, want nil", got)
	}
	if got := bk.Search("ha noi", -1); got != nil {
		t.Errorf("bktree.Search with maxDist<0 = %v, want nil", got)
	}
}

package fuzzyindex

import "github.com/agnivade/levenshtein"

// bkNode is one node of a BK-tree: a key plus a map from edit distance
// (to this node's key) to the child inserted at that distance.
type bkNode struct {
	key      string
	children map[int]*bkNode
}

// BKTree is a fuzzy index realized as a tree keyed on edit distance from
// parent to child, pruned at search time via the triangle inequality:
// only children whose distance-from-parent falls in [d-maxDist,
// d+maxDist] can contain a match, where d is the query's distance to
// the current node.
type BKTree struct {
	root *bkNode
}

// NewBKTree builds a BK-tree over keys. The first key becomes the root;
// order otherwise only affects tree shape, never the result set.
func NewBKTree(keys []string) *BKTree {
	bt := &BKTree{}
	for _, k := range keys {
		bt.insert(k)
	}
	return bt
}

func (bt *BKTree) insert(key string) {
	if bt.root == nil {
		bt.root = &bkNode{key: key, children: map[int]*bkNode{}}
		return
	}
	n := bt.root
	for {
		d := levenshtein.ComputeDistance(key, n.key)
		if d == 0 {
			return // already indexed
		}
		child, ok := n.children[d]
		if !ok {
			n.children[d] = &bkNode{key: key, children: map[int]*bkNode{}}
			return
		}
		n = child
	}
}

// Search returns every key within edit distance maxDist of query.
func (bt *BKTree) Search(query string, maxDist int) []Match {
	if bt.root == nil || maxDist < 0 {
		return nil
	}
	var out []Match
	var visit func(n *bkNode)
	visit = func(n *bkNode) {
		d := levenshtein.ComputeDistance(query, n.key)
		if d <= maxDist {
			out = append(out, Match{Key: n.key, Distance: d})
		}
		lo, hi := d-maxDist, d+maxDist
		for cd, child := range n.children {
			if cd >= lo && cd <= hi {
				visit(child)
			}
		}
	}
	visit(bt.root)
	return out
}

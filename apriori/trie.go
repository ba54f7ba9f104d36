package apriori

import "sort"

// node is one candidate-trie entry. Nodes are arena-allocated and
// addressed by integer handle; kids are ascending by item code, so the
// counting pass can merge-intersect them with a sorted transaction.
type node struct {
	item   int32
	parent int32
	supp   float64
	kids   []int32
}

// trie is the arena holding the frequent-itemset prefix tree. Index 0 is
// the synthetic root (item -1).
type trie struct {
	nodes []node
}

func newTrie() *trie {
	return &trie{nodes: []node{{item: -1, parent: -1}}}
}

// add appends a child of parent p with the given item and returns its
// handle. Children are always added in ascending item order per parent.
func (tr *trie) add(p int32, item int32) int32 {
	h := int32(len(tr.nodes))
	tr.nodes = append(tr.nodes, node{item: item, parent: p})
	tr.nodes[p].kids = append(tr.nodes[p].kids, h)

	return h
}

// lookup reports whether the exact itemset is present as a trie path.
func (tr *trie) lookup(set []int) bool {
	at := int32(0)
	for _, c := range set {
		kids := tr.nodes[at].kids
		i := sort.Search(len(kids), func(i int) bool {
			return tr.nodes[kids[i]].item >= int32(c)
		})
		if i == len(kids) || tr.nodes[kids[i]].item != int32(c) {
			return false
		}
		at = kids[i]
	}

	return true
}

// set reconstructs the itemset of handle h into buf (reused scratch),
// returning the codes in ascending order.
func (tr *trie) set(h int32, buf []int) []int {
	buf = buf[:0]
	for at := h; tr.nodes[at].parent >= 0; at = tr.nodes[at].parent {
		buf = append(buf, int(tr.nodes[at].item))
	}
	// The parent walk yields the path tail-first; reverse into code order.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}

// count adds w to every node of the target level whose path is a subset
// of the sorted transaction t. The merge descent relies on both kids and
// t being ascending.
func (tr *trie) count(at int32, t []int, w float64, depth, target int) {
	kids := tr.nodes[at].kids
	ki, ti := 0, 0
	for ki < len(kids) && ti < len(t) {
		item := int(tr.nodes[kids[ki]].item)
		switch {
		case item < t[ti]:
			ki++
		case item > t[ti]:
			ti++
		default:
			if depth+1 == target {
				tr.nodes[kids[ki]].supp += w
			} else {
				tr.count(kids[ki], t[ti+1:], w, depth+1, target)
			}
			ki++
			ti++
		}
	}
}

// prune drops the kids of every frontier parent whose support stayed
// below bound and returns the surviving handles in generation order.
func (tr *trie) prune(level []int32, bound float64) []int32 {
	out := level[:0]
	touched := make(map[int32]bool)
	for _, h := range level {
		if tr.nodes[h].supp >= bound {
			out = append(out, h)

			continue
		}
		touched[tr.nodes[h].parent] = true
	}
	for p := range touched {
		kids := tr.nodes[p].kids[:0]
		for _, k := range tr.nodes[p].kids {
			if tr.nodes[k].supp >= bound {
				kids = append(kids, k)
			}
		}
		tr.nodes[p].kids = kids
	}

	return out
}

package fpgrowth

import "sort"

// fpnode is one arena-allocated pattern-tree node. parent links climb
// toward the root (handle 0); succ chains nodes of the same item for the
// header table.
type fpnode struct {
	item   int32
	parent int32
	succ   int32
	supp   float64
	kids   []int32 // child handles, ascending by item code
}

// header anchors the per-item node chain and its accumulated support.
type header struct {
	head int32
	supp float64
}

// fptree is the compressed prefix tree over a (conditional) database.
// items lists the codes present, ascending.
type fptree struct {
	nodes []fpnode
	heads []header
	items []int
}

// newTree allocates an empty tree over a code universe of n items.
func newTree(n int) *fptree {
	t := &fptree{
		nodes: []fpnode{{item: -1, parent: -1, succ: -1}},
		heads: make([]header, n),
	}
	for i := range t.heads {
		t.heads[i].head = -1
	}

	return t
}

// insert merges one item sequence (ascending code order, already filtered
// to frequent items) with weight w into the tree.
func (t *fptree) insert(items []int, w float64) {
	at := int32(0)
	for _, c := range items {
		at = t.child(at, int32(c), w)
		t.heads[c].supp += w
	}
}

// child returns the child of p carrying item, creating and chaining a new
// node when absent, and adds w to its count.
func (t *fptree) child(p, item int32, w float64) int32 {
	kids := t.nodes[p].kids
	i := sort.Search(len(kids), func(i int) bool {
		return t.nodes[kids[i]].item >= item
	})
	if i < len(kids) && t.nodes[kids[i]].item == item {
		t.nodes[kids[i]].supp += w

		return kids[i]
	}

	h := int32(len(t.nodes))
	t.nodes = append(t.nodes, fpnode{
		item:   item,
		parent: p,
		succ:   t.heads[item].head,
		supp:   w,
	})
	t.heads[item].head = h
	t.nodes[p].kids = append(t.nodes[p].kids, 0)
	copy(t.nodes[p].kids[i+1:], t.nodes[p].kids[i:])
	t.nodes[p].kids[i] = h

	return h
}

// seal records the ascending list of items actually present with support
// at or above bound; items below the bound keep empty header chains but
// are skipped by the miner.
func (t *fptree) seal(bound float64) {
	t.items = t.items[:0]
	for c := range t.heads {
		if t.heads[c].supp >= bound {
			t.items = append(t.items, c)
		}
	}
}

// conditional builds the conditional tree for item c: every prefix path
// ending at a node of c's header chain, weighted by that node's count,
// filtered to items whose conditional support reaches bound.
func (t *fptree) conditional(c int, bound float64) *fptree {
	// Pass 1: conditional supports along the prefix paths.
	supports := make([]float64, len(t.heads))
	for n := t.heads[c].head; n >= 0; n = t.nodes[n].succ {
		w := t.nodes[n].supp
		for at := t.nodes[n].parent; at > 0; at = t.nodes[at].parent {
			supports[t.nodes[at].item] += w
		}
	}

	// Pass 2: re-accrete the surviving paths into a fresh tree.
	cond := newTree(len(t.heads))
	path := make([]int, 0, 16)
	for n := t.heads[c].head; n >= 0; n = t.nodes[n].succ {
		path = path[:0]
		for at := t.nodes[n].parent; at > 0; at = t.nodes[at].parent {
			if supports[t.nodes[at].item] >= bound {
				path = append(path, int(t.nodes[at].item))
			}
		}
		if len(path) == 0 {
			continue
		}
		// The parent climb yields items in descending code order.
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		cond.insert(path, t.nodes[n].supp)
	}
	cond.seal(bound)

	return cond
}

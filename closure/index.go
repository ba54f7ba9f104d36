package closure

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/fim/core"
)

// Mode selects which patterns the index retains.
type Mode int

const (
	// ModeAll retains every accepted itemset unfiltered.
	ModeAll Mode = iota

	// ModeClosed retains itemsets with no equal-support strict superset.
	ModeClosed

	// ModeMaximal retains itemsets with no strict superset at all.
	ModeMaximal

	// ModeGenerators retains itemsets with no equal-support strict subset.
	ModeGenerators
)

// ErrUnknownMode is returned by New for a mode outside the defined set.
var ErrUnknownMode = fmt.Errorf("closure: %w: unknown mode", core.ErrInvalidConfig)

// Option configures the index.
type Option func(*Index)

// WithEpsilon sets the tolerance used for support-equality tests.
// Non-positive values are ignored and keep the default 1e-9.
func WithEpsilon(eps float64) Option {
	return func(ix *Index) {
		if eps > 0 {
			ix.eps = eps
		}
	}
}

// cnode is one arena trie node. Handle 0 is the root (the empty itemset).
type cnode struct {
	item     int32
	parent   int32
	supp     float64
	depth    int32
	retained bool
	kids     []int32 // ascending by item code
}

// Index is the closure/maximality repository. Single-threaded per mining
// run; it owns its retained itemsets and releases them when the run's
// references drop.
type Index struct {
	mode  Mode
	eps   float64
	nodes []cnode
	order []int32 // trie handles in acceptance order
}

// New creates an index for the given mode.
func New(mode Mode, opts ...Option) (*Index, error) {
	if mode < ModeAll || mode > ModeGenerators {
		return nil, ErrUnknownMode
	}
	ix := &Index{
		mode:  mode,
		eps:   1e-9,
		nodes: []cnode{{item: -1, parent: -1}},
	}
	for _, opt := range opts {
		opt(ix)
	}

	return ix, nil
}

// Mode returns the configured filtering mode.
func (ix *Index) Mode() Mode { return ix.mode }

// equal reports support equality within the configured tolerance.
func (ix *Index) equal(a, b float64) bool { return math.Abs(a-b) <= ix.eps }

// Accept offers one (itemset, support) pair in the strategy's emission
// order and reports whether it is retained right now. In maximal and
// generator modes a retained itemset may still be evicted by a later
// acceptance; Patterns reflects the final state.
func (ix *Index) Accept(set []int, supp float64) bool {
	switch ix.mode {
	case ModeClosed:
		if ix.superset(0, set, 0, true, supp, true) {
			return false
		}
		ix.insert(set, supp)
		ix.evictSubsets(0, set, 0, 0, true, supp, len(set))
	case ModeMaximal:
		if ix.superset(0, set, 0, true, 0, false) {
			return false
		}
		ix.insert(set, supp)
		ix.evictSubsets(0, set, 0, 0, false, 0, len(set))
	case ModeGenerators:
		if ix.subset(0, set, 0, 0, true, supp) {
			return false
		}
		ix.insert(set, supp)
		ix.evictSupersets(0, set, 0, true, true, supp)
	default: // ModeAll
		ix.insert(set, supp)
	}

	return true
}

// Emit adapts the index into a strategy emission callback: every offered
// pattern goes through Accept, nothing is ever rejected with an error.
func (ix *Index) Emit() core.Emit {
	return func(set []int, supp float64) error {
		ix.Accept(set, supp)

		return nil
	}
}

// Len returns the number of currently retained itemsets.
func (ix *Index) Len() int {
	n := 0
	for _, h := range ix.order {
		if ix.nodes[h].retained {
			n++
		}
	}

	return n
}

// Patterns returns the retained itemsets in acceptance order. Sets are
// freshly allocated; the index keeps no reference to them.
func (ix *Index) Patterns() []core.Pattern {
	out := make([]core.Pattern, 0, len(ix.order))
	for _, h := range ix.order {
		if !ix.nodes[h].retained {
			continue
		}
		set := make([]int, ix.nodes[h].depth)
		for at := h; ix.nodes[at].parent >= 0; at = ix.nodes[at].parent {
			set[ix.nodes[at].depth-1] = int(ix.nodes[at].item)
		}
		out = append(out, core.Pattern{Set: set, Supp: ix.nodes[h].supp})
	}

	return out
}

// insert walks/creates the trie path for set, marks it retained and
// records the acceptance order.
func (ix *Index) insert(set []int, supp float64) {
	at := int32(0)
	for _, c := range set {
		at = ix.child(at, int32(c))
	}
	ix.nodes[at].supp = supp
	ix.nodes[at].retained = true
	ix.order = append(ix.order, at)
}

// child returns the child of p carrying item, creating it when absent.
func (ix *Index) child(p, item int32) int32 {
	kids := ix.nodes[p].kids
	i := sort.Search(len(kids), func(i int) bool {
		return ix.nodes[kids[i]].item >= item
	})
	if i < len(kids) && ix.nodes[kids[i]].item == item {
		return kids[i]
	}

	h := int32(len(ix.nodes))
	ix.nodes = append(ix.nodes, cnode{
		item:   item,
		parent: p,
		depth:  ix.nodes[p].depth + 1,
	})
	ix.nodes[p].kids = append(ix.nodes[p].kids, 0)
	copy(ix.nodes[p].kids[i+1:], ix.nodes[p].kids[i:])
	ix.nodes[p].kids[i] = h

	return h
}

// superset reports whether a retained strict superset of set exists.
// exact tracks whether the path walked so far equals the set prefix with
// no extra items (needed to enforce strictness at the terminal node).
// When eq is true only supersets with support within eps of supp match.
func (ix *Index) superset(at int32, set []int, from int, exact bool, supp float64, eq bool) bool {
	if from == len(set) {
		return ix.anyRetained(at, !exact, supp, eq)
	}
	need := int32(set[from])
	for _, k := range ix.nodes[at].kids {
		item := ix.nodes[k].item
		if item > need {
			break // kids ascend; the needed item cannot appear anymore
		}
		if item == need {
			if ix.superset(k, set, from+1, exact, supp, eq) {
				return true
			}
		} else if ix.superset(k, set, from, false, supp, eq) {
			return true
		}
	}

	return false
}

// anyRetained reports whether the subtree rooted at `at` holds a retained
// node; includeSelf admits `at` itself (used when the path already
// diverged from the probe set and is therefore a strict superset).
func (ix *Index) anyRetained(at int32, includeSelf bool, supp float64, eq bool) bool {
	if includeSelf && ix.nodes[at].retained && (!eq || ix.equal(ix.nodes[at].supp, supp)) {
		return true
	}
	for _, k := range ix.nodes[at].kids {
		if ix.anyRetained(k, true, supp, eq) {
			return true
		}
	}

	return false
}

// subset reports whether a retained strict subset of set exists (every
// trie path using only items of set, shorter than set itself). When eq is
// true only subsets with support within eps of supp match.
func (ix *Index) subset(at int32, set []int, from int, depth int, eq bool, supp float64) bool {
	if ix.nodes[at].retained && depth < len(set) &&
		(!eq || ix.equal(ix.nodes[at].supp, supp)) {
		return true
	}
	for i := from; i < len(set); i++ {
		kids := ix.nodes[at].kids
		j := sort.Search(len(kids), func(j int) bool {
			return ix.nodes[kids[j]].item >= int32(set[i])
		})
		if j == len(kids) || ix.nodes[kids[j]].item != int32(set[i]) {
			continue
		}
		if ix.subset(kids[j], set, i+1, depth+1, eq, supp) {
			return true
		}
	}

	return false
}

// evictSubsets unmarks every retained strict subset of set (support
// within eps of supp when eq is set). size is len(set); depth tracks the
// current path length.
func (ix *Index) evictSubsets(at int32, set []int, from, depth int, eq bool, supp float64, size int) {
	if ix.nodes[at].retained && depth < size &&
		(!eq || ix.equal(ix.nodes[at].supp, supp)) {
		ix.nodes[at].retained = false
	}
	for i := from; i < len(set); i++ {
		kids := ix.nodes[at].kids
		j := sort.Search(len(kids), func(j int) bool {
			return ix.nodes[kids[j]].item >= int32(set[i])
		})
		if j == len(kids) || ix.nodes[kids[j]].item != int32(set[i]) {
			continue
		}
		ix.evictSubsets(kids[j], set, i+1, depth+1, eq, supp, size)
	}
}

// evictSupersets unmarks every retained strict superset of set (support
// within eps of supp when eq is set).
func (ix *Index) evictSupersets(at int32, set []int, from int, exact, eq bool, supp float64) {
	if from == len(set) {
		ix.evictSubtree(at, !exact, eq, supp)

		return
	}
	need := int32(set[from])
	for _, k := range ix.nodes[at].kids {
		item := ix.nodes[k].item
		if item > need {
			break
		}
		if item == need {
			ix.evictSupersets(k, set, from+1, exact, eq, supp)
		} else {
			ix.evictSupersets(k, set, from, false, eq, supp)
		}
	}
}

// evictSubtree unmarks retained nodes below (and optionally at) `at`.
func (ix *Index) evictSubtree(at int32, includeSelf, eq bool, supp float64) {
	if includeSelf && ix.nodes[at].retained && (!eq || ix.equal(ix.nodes[at].supp, supp)) {
		ix.nodes[at].retained = false
	}
	for _, k := range ix.nodes[at].kids {
		ix.evictSubtree(k, true, eq, supp)
	}
}

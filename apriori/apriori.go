package apriori

import (
	"github.com/katalvlaran/fim/core"
)

// Mine enumerates all frequent itemsets of db level by level, streaming
// each (itemset, support) pair to emit. Emission order is deterministic:
// by itemset size, then lexicographically by item code.
//
// The emitted set slice is reused between calls; consumers that keep it
// must copy. Returning core.ErrStop from emit ends the enumeration early
// without error.
//
// Errors: core.ErrNilDatabase / core.ErrNilEmit for missing arguments,
// core.ErrInvalidConfig (via option violations) for a bad size window,
// core.ErrAborted when the context is cancelled mid-search.
func Mine(db *core.Database, emit core.Emit, opts ...core.MineOption) error {
	// 1. Validate arguments and options before touching the database.
	if db == nil {
		return core.ErrNilDatabase
	}
	if emit == nil {
		return core.ErrNilEmit
	}
	o := core.DefaultMineOptions()
	if err := o.Validate(opts...); err != nil {
		return err
	}
	bound := db.Resolve(o.Supp)

	// 2. The empty itemset is reported only on explicit request (zmin=0);
	//    its support is the total transaction weight.
	if o.ZMin == 0 && db.Total() >= bound {
		if stop, err := core.Deliver(emit, []int{}, db.Total()); stop || err != nil {
			return err
		}
	}

	// 3. Seed the trie with the frequent 1-itemsets; their supports are
	//    already aggregated in the database, no scan needed.
	tr := newTrie()
	level := make([]int32, 0, db.ItemCount())
	for _, c := range db.Frequent(bound) {
		h := tr.add(0, int32(c))
		tr.nodes[h].supp = db.Support(c)
		level = append(level, h)
	}
	scratch := make([]int, 0, 16)
	if o.SizeOK(1) {
		for _, h := range level {
			scratch = tr.set(h, scratch)
			if stop, err := core.Deliver(emit, scratch, tr.nodes[h].supp); stop || err != nil {
				return err
			}
		}
	}

	// 4. Level-wise expansion until exhaustion or the size cap.
	maxSize := o.DepthCap(db)
	for size := 1; size < maxSize && len(level) > 0; size++ {
		next := extend(tr, level, scratch)
		if len(next) == 0 {
			break
		}

		// One counting scan over the whole database for this level.
		for i := 0; i < db.Len(); i++ {
			if err := core.Interrupted(o.Ctx); err != nil {
				return err
			}
			tr.count(0, db.Tract(i), db.Weight(i), 0, size+1)
		}
		level = tr.prune(next, bound)

		if !o.SizeOK(size + 1) {
			continue
		}
		for _, h := range level {
			scratch = tr.set(h, scratch)
			if stop, err := core.Deliver(emit, scratch, tr.nodes[h].supp); stop || err != nil {
				return err
			}
		}
	}

	return nil
}

// extend generates the size-(k+1) candidates from the size-k frontier:
// each frontier node is joined with its larger siblings, then a candidate
// survives only if every k-subset is present in the trie (downward
// closure). Candidates are appended in lexicographic order.
func extend(tr *trie, level []int32, scratch []int) []int32 {
	next := make([]int32, 0, len(level))
	subset := make([]int, 0, 16)
	for _, h := range level {
		p := tr.nodes[h].parent
		scratch = tr.set(h, scratch)
		for _, sib := range tr.nodes[p].kids {
			if tr.nodes[sib].item <= tr.nodes[h].item {
				continue
			}
			cand := append(scratch, int(tr.nodes[sib].item))
			if !closedDownward(tr, cand, &subset) {
				continue
			}
			next = append(next, tr.add(h, tr.nodes[sib].item))
		}
	}

	return next
}

// closedDownward checks the apriori property: every subset of cand that
// omits one of the first len-2 items must already be a frequent trie
// path. (Omitting either of the last two items reproduces the two parents
// that generated the candidate, which are frequent by construction.)
func closedDownward(tr *trie, cand []int, subset *[]int) bool {
	for skip := 0; skip < len(cand)-2; skip++ {
		*subset = (*subset)[:0]
		for i, c := range cand {
			if i != skip {
				*subset = append(*subset, c)
			}
		}
		if !tr.lookup(*subset) {
			return false
		}
	}

	return true
}

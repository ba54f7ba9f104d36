package eclat

import (
	"github.com/katalvlaran/fim/core"
)

// candidate pairs an extension item with the vertical list of the
// transactions supporting the current path extended by that item.
type candidate struct {
	item int
	tids []int
	supp float64
}

// walker carries the per-run state of the depth-first search.
type walker struct {
	db      *core.Database
	emit    core.Emit
	opts    core.MineOptions
	bound   float64
	path    []int
	stopped bool
}

// Mine enumerates all frequent itemsets of db depth-first, streaming each
// (itemset, support) pair to emit. Emission order is deterministic:
// lexicographic by item code, each prefix before its extensions.
//
// The emitted set slice is reused between calls; consumers that keep it
// must copy. Returning core.ErrStop from emit ends the enumeration early
// without error.
func Mine(db *core.Database, emit core.Emit, opts ...core.MineOption) error {
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

	w := &walker{
		db:    db,
		emit:  emit,
		opts:  o,
		bound: db.Resolve(o.Supp),
		path:  make([]int, 0, 16),
	}

	if o.ZMin == 0 && db.Total() >= w.bound {
		if stop, err := core.Deliver(emit, w.path, db.Total()); stop || err != nil {
			return err
		}
	}

	// Root candidates: one vertical list per frequent item, ascending code.
	roots := make([]candidate, 0, db.ItemCount())
	for _, c := range db.Frequent(w.bound) {
		roots = append(roots, candidate{item: c, tids: db.VerticalList(c), supp: db.Support(c)})
	}

	return w.descend(roots)
}

// descend emits every candidate in order, then recurses into the
// candidate's extensions built by intersecting vertical lists.
func (w *walker) descend(cands []candidate) error {
	for i := range cands {
		if err := core.Interrupted(w.opts.Ctx); err != nil {
			return err
		}
		w.path = append(w.path, cands[i].item)
		if w.opts.SizeOK(len(w.path)) {
			stop, err := core.Deliver(w.emit, w.path, cands[i].supp)
			if err != nil {
				return err
			}
			w.stopped = stop
		}
		if w.stopped {
			w.path = w.path[:len(w.path)-1]

			return nil
		}

		// Backtrack immediately once the path has reached the size cap:
		// deeper itemsets cannot be reported.
		if w.opts.ZMax == 0 || len(w.path) < w.opts.ZMax {
			exts := w.extensions(cands, i)
			if len(exts) > 0 {
				if err := w.descend(exts); err != nil {
					return err
				}
			}
		}
		w.path = w.path[:len(w.path)-1]
		if w.stopped {
			return nil
		}
	}

	return nil
}

// extensions intersects cands[i] with every later sibling, keeping the
// results that stay at or above the support bound.
func (w *walker) extensions(cands []candidate, i int) []candidate {
	exts := make([]candidate, 0, len(cands)-i-1)
	for j := i + 1; j < len(cands); j++ {
		tids, supp := w.intersect(cands[i].tids, cands[j].tids)
		if supp >= w.bound {
			exts = append(exts, candidate{item: cands[j].item, tids: tids, supp: supp})
		}
	}

	return exts
}

// intersect merges two ordered vertical lists, returning the common
// transaction indices and their summed weight.
func (w *walker) intersect(a, b []int) ([]int, float64) {
	out := make([]int, 0, min(len(a), len(b)))
	var supp float64
	ai, bi := 0, 0
	for ai < len(a) && bi < len(b) {
		switch {
		case a[ai] < b[bi]:
			ai++
		case a[ai] > b[bi]:
			bi++
		default:
			out = append(out, a[ai])
			supp += w.db.Weight(a[ai])
			ai++
			bi++
		}
	}

	return out, supp
}

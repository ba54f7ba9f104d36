package fpgrowth

import (
	"github.com/katalvlaran/fim/core"
)

// walker carries the per-run state of the pattern-tree recursion.
type walker struct {
	emit    core.Emit
	opts    core.MineOptions
	bound   float64
	path    []int // pivots in descending code order
	scratch []int // emission buffer (ascending code order)
	stopped bool
}

// Mine enumerates all frequent itemsets of db by FP-growth, streaming
// each (itemset, support) pair to emit. Emission order is deterministic:
// anchored at the largest item code, descending, prefixes before their
// extensions.
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
		emit:    emit,
		opts:    o,
		bound:   db.Resolve(o.Supp),
		path:    make([]int, 0, 16),
		scratch: make([]int, 0, 16),
	}

	if o.ZMin == 0 && db.Total() >= w.bound {
		if stop, err := core.Deliver(emit, w.scratch, db.Total()); stop || err != nil {
			return err
		}
	}

	// Single accretion pass: merge every transaction, restricted to its
	// frequent items, into the shared pattern tree.
	frequent := make([]bool, db.ItemCount())
	for _, c := range db.Frequent(w.bound) {
		frequent[c] = true
	}
	tree := newTree(db.ItemCount())
	items := make([]int, 0, 16)
	for i := 0; i < db.Len(); i++ {
		if err := core.Interrupted(o.Ctx); err != nil {
			return err
		}
		items = items[:0]
		for _, c := range db.Tract(i) {
			if frequent[c] {
				items = append(items, c)
			}
		}
		if len(items) > 0 {
			tree.insert(items, db.Weight(i))
		}
	}
	tree.seal(w.bound)

	return w.mine(tree)
}

// mine walks the tree's items from the least frequent upwards, reporting
// each pivot and recursing into its conditional tree.
func (w *walker) mine(t *fptree) error {
	for i := len(t.items) - 1; i >= 0; i-- {
		pivot := t.items[i]
		if err := core.Interrupted(w.opts.Ctx); err != nil {
			return err
		}

		w.path = append(w.path, pivot)
		if w.opts.SizeOK(len(w.path)) {
			stop, err := core.Deliver(w.emit, w.emission(), t.heads[pivot].supp)
			if err != nil {
				return err
			}
			w.stopped = stop
		}
		if w.stopped {
			w.path = w.path[:len(w.path)-1]

			return nil
		}

		if w.opts.ZMax == 0 || len(w.path) < w.opts.ZMax {
			cond := t.conditional(pivot, w.bound)
			if len(cond.items) > 0 {
				if err := w.mine(cond); err != nil {
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

// emission renders the current path (descending pivots) as an ascending
// itemset in the reusable scratch buffer.
func (w *walker) emission() []int {
	w.scratch = w.scratch[:0]
	for i := len(w.path) - 1; i >= 0; i-- {
		w.scratch = append(w.scratch, w.path[i])
	}

	return w.scratch
}

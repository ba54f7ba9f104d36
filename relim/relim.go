package relim

import (
	"github.com/katalvlaran/fim/core"
)

// walker carries the per-run state of the projection recursion.
type walker struct {
	emit    core.Emit
	opts    core.MineOptions
	bound   float64
	path    []int // pivots in descending code order
	scratch []int // emission buffer (ascending code order)
	stopped bool
}

// Mine enumerates all frequent itemsets of db by recursive elimination,
// streaming each (itemset, support) pair to emit. Emission order is
// deterministic: anchored at the largest item code, descending.
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
	if err := w.mine(db, db.ItemCount()); err != nil {
		return err
	}

	return nil
}

// mine processes every frequent pivot below limit in descending code
// order: report the extended path, then eliminate the pivot by projecting
// and recurse into the conditional database.
func (w *walker) mine(db *core.Database, limit int) error {
	freq := db.Frequent(w.bound)
	for i := len(freq) - 1; i >= 0; i-- {
		pivot := freq[i]
		if pivot >= limit {
			continue
		}
		if err := core.Interrupted(w.opts.Ctx); err != nil {
			return err
		}

		w.path = append(w.path, pivot)
		if w.opts.SizeOK(len(w.path)) {
			stop, err := core.Deliver(w.emit, w.emission(), db.Support(pivot))
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
			if err := w.mine(db.Project(pivot, w.bound), pivot); err != nil {
				return err
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

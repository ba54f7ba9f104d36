// Package closure maintains the incrementally grown repository of
// accepted itemsets that filters a mining stream down to closed, maximal
// or generator patterns.
//
// 🚀 How it works:
//
//	Accepted itemsets live in an arena-allocated trie keyed by item code
//	(children ascending by code — descending support, so short
//	high-support candidates are checked against already-accepted longer
//	ones first). The trie answers the two queries every mode needs:
//	"is a retained superset of this set present?" and "is a retained
//	subset present?", both optionally constrained to equal support.
//
//	Each mode queries one direction and evicts the other, which makes the
//	retained set correct regardless of the strategy's emission order:
//
//	  • ModeClosed     — reject on an equal-support strict superset,
//	    evict equal-support strict subsets.
//	  • ModeMaximal    — reject on any strict superset, evict strict
//	    subsets (support plays no role).
//	  • ModeGenerators — reject on an equal-support strict subset,
//	    evict equal-support strict supersets.
//	  • ModeAll        — retain everything.
//
// ✨ Invariants (after any Accept): no retained itemset is a strict
// subset of another retained itemset with equal support (closed mode),
// or of any retained itemset at all (maximal mode).
//
// ⚙️ Usage:
//
//	ix, err := closure.New(closure.ModeClosed)
//	_ = strategy.Mine(db, ix.Emit())
//	for _, p := range ix.Patterns() { ... }
//
// The index is single-threaded per mining run: no concurrent insertions.
// Support equality uses an epsilon (default 1e-9, see WithEpsilon) since
// equal mathematical sums may differ in the last ulp between summation
// orders.
package closure

// Package apriori implements breadth-first, level-wise frequent-itemset
// search over a core.Database.
//
// 🚀 How it works:
//
//	The current frontier of size-k frequent itemsets lives in a candidate
//	trie keyed by item code. Size-(k+1) candidates are generated by
//	extending each frontier node with the items of its larger frequent
//	siblings, pruned when any k-subset is infrequent, counted with a single
//	database scan per level, and pruned again against the support bound.
//	The search terminates when a level produces no survivors or the size
//	window is exhausted.
//
// ✨ Trade-off: all candidates of one level are held simultaneously
// (memory) in exchange for simple, cache-friendly counting passes — the
// classic level-wise profile.
//
// ⚙️ Usage:
//
//	err := apriori.Mine(db, func(set []int, supp float64) error {
//	    fmt.Println(set, supp)
//	    return nil
//	}, core.WithSupport(-2), core.WithSizeRange(1, 0))
//
// Shared contract (all strategies): the support bound is inclusive,
// weighted transactions sum their weights, the empty itemset appears only
// when zmin == 0, a bound above the total weight yields an empty
// enumeration, and a context cancellation surfaces as core.ErrAborted.
//
// Complexity: O(levels · |db| · trie) time, O(candidates) space.
package apriori

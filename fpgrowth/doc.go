// Package fpgrowth implements frequent-itemset search on a shared
// prefix/pattern tree (FP-tree) grown in a single pass over the
// transactions.
//
// 🚀 How it works:
//
//	Every transaction, restricted to its frequent items in code order
//	(most frequent first), is merged into a compressed prefix tree whose
//	nodes carry accumulated weights; identical prefixes share nodes.
//	Per-item header chains link all occurrences of an item across the
//	tree. Mining walks items from the least frequent upwards: the header
//	chain yields the conditional pattern base (the prefix paths ending at
//	the item, weighted by the node counts), which accretes into a
//	conditional tree mined recursively. Supports are read from node
//	counts — the transaction database is never rescanned.
//
// ✨ Trade-off: useful when the database is large and level-wise or
// vertical strategies become memory- or scan-bound; the tree compresses
// shared prefixes aggressively.
//
// ⚙️ Usage:
//
//	err := fpgrowth.Mine(db, collect, core.WithSupport(-1.6))
//
// Shared contract (all strategies): inclusive support bound, weighted
// transactions sum their weights, empty itemset only when zmin == 0,
// bound above total weight yields an empty enumeration, cancellation
// surfaces as core.ErrAborted.
//
// Complexity: O(|db| + frequent itemsets · conditional tree cost) time;
// tree nodes are arena-allocated and addressed by integer handle.
package fpgrowth

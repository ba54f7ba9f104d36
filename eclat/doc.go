// Package eclat implements depth-first frequent-itemset search by
// intersecting vertical transaction-index lists.
//
// 🚀 How it works:
//
//	Every frequent item starts with its vertical list (the ordered indices
//	of the transactions containing it, from core.Database.VerticalList).
//	The search descends item by item in ascending code order, intersecting
//	the current path's list with each candidate extension; the weighted
//	size of the intersection is the support. Recursion continues only
//	while intersections stay at or above the bound, and backtracks
//	otherwise.
//
// ✨ Trade-off: nothing is materialized beyond the current path — low
// memory, at the price of repeated intersections on dense data. The exact
// mirror image of the apriori profile.
//
// ⚙️ Usage:
//
//	err := eclat.Mine(db, collect, core.WithSupport(-1.6), core.WithSizeRange(2, 0))
//
// Shared contract (all strategies): inclusive support bound, weighted
// transactions sum their weights, empty itemset only when zmin == 0,
// bound above total weight yields an empty enumeration, cancellation
// surfaces as core.ErrAborted.
//
// Complexity: O(frequent itemsets · avg list length) time, O(path · lists)
// space.
package eclat

// Package relim implements frequent-itemset search by recursive
// elimination: tree-projection mining on conditional databases.
//
// 🚀 How it works:
//
//	Items are processed from the least frequent code upwards (the highest
//	code first — codes are assigned by descending support). For a pivot
//	item the database is projected with core.Database.Project: only the
//	transactions containing the pivot survive, the pivot is removed, and
//	items falling below the bound inside the projection are eliminated.
//	The projection is mined recursively for items preceding the pivot, so
//	every itemset is enumerated exactly once, anchored at its largest
//	code. Supports are read directly from the projection's aggregates —
//	no repeated scans of the base database.
//
// ⚙️ Usage:
//
//	err := relim.Mine(db, collect, core.WithSupport(10))
//
// Shared contract (all strategies): inclusive support bound, weighted
// transactions sum their weights, empty itemset only when zmin == 0,
// bound above total weight yields an empty enumeration, cancellation
// surfaces as core.ErrAborted.
//
// Complexity: O(frequent itemsets · projection cost) time; each recursion
// level holds one projection snapshot.
package relim

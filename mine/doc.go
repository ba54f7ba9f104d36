// Package mine is the callable surface of the library: one call takes raw
// transactions and returns decoded frequent itemsets or association
// rules, assembling the full pipeline — encoder → database → search
// strategy → closure filter → reporter → (rule generator).
//
// 🚀 Entry points:
//
//	mine.Apriori(tracts, ...)   // breadth-first level-wise
//	mine.Eclat(tracts, ...)     // depth-first vertical intersection
//	mine.Relim(tracts, ...)     // tree-projection / recursive elimination
//	mine.FPGrowth(tracts, ...)  // prefix/pattern-tree accretion
//	mine.Run(tracts, ...)       // generic, strategy via WithStrategy
//
// Defaults mirror the historical callable surface: target all-frequent,
// support 10 (percent — negative values are absolute weighted counts),
// confidence 80 percent, sizes 1..unbounded.
//
// ✨ Pipeline rules:
//
//   - Configuration is validated eagerly; zmax < zmin or an unknown
//     target/strategy is rejected with core.ErrInvalidConfig before any
//     database scan.
//   - Closed/maximal/generator targets run the strategy over the full
//     frequent space (a size cap would hide the supersets that disqualify
//     candidates) and apply the size window afterwards, at report time.
//   - The rules target mines all frequent itemsets first, then derives
//     rules; the size window bounds the rule's underlying itemset.
//   - Every call owns its encoder, database and index; nothing survives
//     the call, and no state is shared across concurrent calls.
//
// ⚙️ Usage:
//
//	res, err := mine.Eclat(tracts,
//	    mine.WithSupport(-1.6),
//	    mine.WithTarget(mine.TargetClosed),
//	    mine.WithSizeRange(2, 0))
//	for _, p := range res.Patterns { fmt.Println(p.Items, p.Support) }
package mine

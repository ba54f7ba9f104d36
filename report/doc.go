// Package report shapes the mining stream into caller-visible results:
// it applies the itemset size window, truncates at a configured result
// cap, and maps item codes back to the caller's identifiers through the
// encoder's decoder.
//
// The reporter preserves arrival order and never re-sorts. Output records
// are report.Pattern{Items, Support} — the field order is part of the
// compatibility surface. Support may be reported as an absolute weighted
// count (default), a fraction of the total weight, or a percentage; see
// Scale.
//
// ⚙️ Usage:
//
//	rep := report.New(dec, report.WithSizeRange(2, 0), report.WithLimit(100))
//	_ = eclat.Mine(db, rep.Emit(db.Total()))
//	for _, p := range rep.Patterns() { ... }
package report

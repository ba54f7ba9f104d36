// Package fim is an in-memory toolkit for frequent-itemset mining and
// association-rule discovery over weighted transaction data.
//
// 🚀 What is fim?
//
//	A pure-Go library that brings together:
//		• Core data layer: dense item encoding, immutable weighted
//		  transaction databases, conditional projections, vertical lists
//		• Search strategies: apriori (level-wise), eclat (vertical
//		  intersection), relim (tree projection), fpgrowth (pattern tree)
//		• Closure filtering: closed, maximal and generator itemsets
//		• Reporting: size windows, result caps, decoded identifiers
//		• Rules: confidence-filtered association rules with pluggable
//		  evaluation measures
//
// ✨ Why choose fim?
//
//   - One shared contract — every strategy consumes the same database and
//     emits the same stream, so strategies are interchangeable
//   - Deterministic — identical inputs give identical outputs, per strategy
//   - Cooperative — context-based cancellation at defined suspension points
//   - Call-scoped — no global state; every call owns its encoder, database
//     and index
//
// Everything is organized under focused subpackages:
//
//	core/     — encoder, database, shared options & error taxonomy
//	apriori/  — breadth-first level-wise search (candidate trie)
//	eclat/    — depth-first vertical-list intersection
//	relim/    — recursive elimination over database projections
//	fpgrowth/ — FP-tree accretion and conditional-tree mining
//	closure/  — closed/maximal/generator repository (arena trie)
//	report/   — size filters, caps, decoding to caller identifiers
//	rules/    — association-rule derivation + evaluators
//	mine/     — the one-call facade tying the pipeline together
//
// Quick example:
//
//	res, err := mine.Eclat(tracts, mine.WithSupport(-2), mine.WithSizeRange(2, 0))
//
// Dive into the per-package docs for the algorithmic details and the
// shared mining contract.
//
//	go get github.com/katalvlaran/fim
package fim

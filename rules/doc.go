// Package rules derives association rules from mined frequent itemsets.
//
// For every frequent itemset of size ≥ 2 the generator enumerates its
// non-empty proper subsets as candidate antecedents (the complement is
// the consequent), in antecedent-size-ascending order, computes
// confidence = support(itemset) / support(antecedent), and keeps rules
// meeting the confidence threshold. Any secondary statistic is delegated
// to caller-supplied Evaluator functions receiving the raw contingency
// counts — the generator never invents measures of its own; Lift and
// Leverage ship as ready-made evaluators.
//
// Rules are produced only after the full frequent-itemset collection is
// known, are never mutated, and follow the fixed record shape
// rules.Rule{Antecedent, Consequent, Support, Confidence, Extra}.
//
// ⚙️ Usage:
//
//	rs, err := rules.Generate(patterns, db, dec,
//	    rules.WithMinConfidence(0.8),
//	    rules.WithEvaluators(rules.Lift))
//
// ErrMissingSupport signals a caller-side mismatch: an antecedent (or,
// with evaluators configured, a consequent) whose support was not
// retained from the mining phase — typically rules generated from a
// filtered (closed/maximal) pattern set instead of the full one.
package rules

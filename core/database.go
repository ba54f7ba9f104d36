// SPDX-License-Identifier: MIT
//
// File: database.go
// Role: the immutable weighted transaction database plus its two derived
//       read-only views (conditional projection, vertical lists).

package core

import "sort"

// Database holds an encoded transaction collection in canonical form:
// every transaction is a strictly increasing sequence of item codes with a
// positive weight, duplicate transactions are merged (weights summed), and
// per-code aggregate supports are precomputed.
//
// A Database never mutates after construction; strategies only read it and
// build derived snapshots via Project and VerticalList. It is exclusively
// owned by one mining call and not shared across concurrent calls.
type Database struct {
	tracts   [][]int   // canonical transactions, insertion order of first occurrence
	weights  []float64 // weights[i] belongs to tracts[i]
	supports []float64 // supports[c] = weighted support of item code c
	total    float64   // sum of all transaction weights
}

// Total returns the total weighted transaction count (the support of the
// empty itemset).
func (db *Database) Total() float64 { return db.total }

// ItemCount returns the number of distinct encoded items; codes cover the
// contiguous range [0, ItemCount).
func (db *Database) ItemCount() int { return len(db.supports) }

// Support returns the aggregate weighted support of one item code.
// Codes outside [0, ItemCount) have support 0.
func (db *Database) Support(code int) float64 {
	if code < 0 || code >= len(db.supports) {
		return 0
	}

	return db.supports[code]
}

// Len returns the number of stored (merged) transactions.
func (db *Database) Len() int { return len(db.tracts) }

// Tract returns transaction i as a strictly increasing code sequence.
// The slice aliases internal storage: callers must not modify it.
func (db *Database) Tract(i int) []int { return db.tracts[i] }

// Weight returns the (merged) weight of transaction i.
func (db *Database) Weight(i int) float64 { return db.weights[i] }

// Resolve converts a threshold under the sign convention into the absolute
// inclusive lower bound used by every strategy: negative thresholds are
// absolute weighted counts, non-negative thresholds are percentages of the
// total transaction weight.
func (db *Database) Resolve(threshold float64) float64 {
	if threshold < 0 {
		return -threshold
	}

	return threshold * db.total / 100
}

// Frequent returns all item codes whose support reaches minSupp
// (inclusive), in ascending code order — that is, in descending support
// order, the order the strategies' pruning relies on.
func (db *Database) Frequent(minSupp float64) []int {
	out := make([]int, 0, len(db.supports))
	for c, s := range db.supports {
		if s >= minSupp {
			out = append(out, c)
		}
	}

	return out
}

// contains reports whether the sorted transaction t holds code.
func contains(t []int, code int) bool {
	i := sort.SearchInts(t, code)

	return i < len(t) && t[i] == code
}

// Project returns the conditional database for one pivot item: only the
// transactions containing code survive, the pivot itself is removed, and
// so is every item whose support within the projection stays below
// minSupp. The projection is a fresh snapshot over the same code space;
// the base database is never touched. Projections are recursively
// reusable, which is what the tree-projection strategy does.
//
// Complexity: O(total items) time, O(projected items) space.
func (db *Database) Project(code int, minSupp float64) *Database {
	// Pass 1: locate matching transactions, count conditional supports.
	supports := make([]float64, len(db.supports))
	matched := make([]int, 0, len(db.tracts))
	var total float64
	for i, t := range db.tracts {
		if !contains(t, code) {
			continue
		}
		matched = append(matched, i)
		total += db.weights[i]
		for _, c := range t {
			supports[c] += db.weights[i]
		}
	}

	// Pass 2: decide survivors (pivot always removed).
	keep := make([]bool, len(db.supports))
	for c := range supports {
		keep[c] = c != code && supports[c] >= minSupp
		if !keep[c] {
			supports[c] = 0
		}
	}

	// Pass 3: rebuild the surviving transactions.
	tracts := make([][]int, 0, len(matched))
	weights := make([]float64, 0, len(matched))
	for _, i := range matched {
		nt := make([]int, 0, len(db.tracts[i]))
		for _, c := range db.tracts[i] {
			if keep[c] {
				nt = append(nt, c)
			}
		}
		tracts = append(tracts, nt)
		weights = append(weights, db.weights[i])
	}

	return &Database{tracts: tracts, weights: weights, supports: supports, total: total}
}

// VerticalList returns the ordered sequence of transaction indices whose
// transactions contain code — the representation intersection-based
// strategies work on. The returned slice is freshly allocated.
//
// Complexity: O(Len · log L) time for transactions of length ≤ L.
func (db *Database) VerticalList(code int) []int {
	out := make([]int, 0)
	for i, t := range db.tracts {
		if contains(t, code) {
			out = append(out, i)
		}
	}

	return out
}

// SPDX-License-Identifier: MIT
//
// File: encoder.go
// Role: item encoding — raw caller identifiers to dense, frequency-ordered
//       integer codes — and transaction canonicalization.

package core

import (
	"math"
	"sort"
)

// EncodeOption configures Encode via functional arguments.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	weights []float64 // per-transaction weights; nil = all 1
	supp    float64   // encode-time item pruning threshold (sign convention)
	prune   bool      // whether supp was supplied
}

// WithWeights attaches a positive weight (occurrence count) to each
// transaction. The slice length must match the number of transactions.
func WithWeights(weights []float64) EncodeOption {
	return func(o *encodeOptions) { o.weights = weights }
}

// WithMinSupport prunes items that cannot reach the given support
// threshold already at encode time, so strategies never see them. The
// threshold follows the usual sign convention; codes stay dense after
// pruning.
func WithMinSupport(supp float64) EncodeOption {
	return func(o *encodeOptions) { o.supp, o.prune = supp, true }
}

// Encode builds the mining database from raw transactions.
//
// It counts the weighted frequency of every item (once per transaction,
// regardless of in-transaction duplicates), assigns dense codes by
// descending frequency with ties broken by first appearance, canonicalizes
// every transaction to a strictly increasing code sequence, merges
// duplicate transactions by summing their weights, and returns the
// immutable Database together with the Decoder reversing the code
// assignment.
//
// Errors: ErrNoTransactions for empty input, ErrEmptyItem for an empty
// identifier, ErrWeightCount / ErrBadWeight for malformed weights, and
// ErrOverflow when the total weight leaves the representable range.
func Encode(tracts [][]string, opts ...EncodeOption) (*Database, *Decoder, error) {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate the input shape before any counting.
	if len(tracts) == 0 {
		return nil, nil, ErrNoTransactions
	}
	if o.weights != nil && len(o.weights) != len(tracts) {
		return nil, nil, ErrWeightCount
	}
	weight := func(i int) float64 {
		if o.weights == nil {
			return 1
		}

		return o.weights[i]
	}
	var total float64
	for i := range tracts {
		w := weight(i)
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, nil, ErrBadWeight
		}
		total += w
	}
	if math.IsInf(total, 0) {
		return nil, nil, ErrOverflow
	}

	// 2. Weighted frequency pass; items count once per transaction.
	freq := make(map[string]float64)
	first := make(map[string]int) // first-appearance rank for tie-breaks
	seen := make(map[string]bool)
	for i, t := range tracts {
		clear(seen)
		for _, item := range t {
			if item == "" {
				return nil, nil, ErrEmptyItem
			}
			if seen[item] {
				continue
			}
			seen[item] = true
			if _, ok := first[item]; !ok {
				first[item] = len(first)
			}
			freq[item] += weight(i)
		}
	}

	// 3. Order items by descending frequency, stable on first appearance.
	names := make([]string, 0, len(freq))
	for item := range freq {
		names = append(names, item)
	}
	sort.Slice(names, func(a, b int) bool {
		if freq[names[a]] != freq[names[b]] {
			return freq[names[a]] > freq[names[b]]
		}

		return first[names[a]] < first[names[b]]
	})

	// 4. Optional encode-time pruning; the code range stays dense.
	if o.prune {
		bound := total
		if o.supp < 0 {
			bound = -o.supp
		} else {
			bound = o.supp * total / 100
		}
		cut := len(names)
		for cut > 0 && freq[names[cut-1]] < bound {
			cut--
		}
		names = names[:cut]
	}
	codes := make(map[string]int, len(names))
	for c, item := range names {
		codes[item] = c
	}

	// 5. Canonicalize transactions and merge duplicates.
	db := &Database{
		tracts:   make([][]int, 0, len(tracts)),
		weights:  make([]float64, 0, len(tracts)),
		supports: make([]float64, len(names)),
		total:    total,
	}
	index := make(map[string]int) // canonical key -> position in db.tracts
	for i, t := range tracts {
		nt := make([]int, 0, len(t))
		for _, item := range t {
			if c, ok := codes[item]; ok {
				nt = append(nt, c)
			}
		}
		sort.Ints(nt)
		nt = dedupe(nt)
		key := Key(nt)
		if at, ok := index[key]; ok {
			db.weights[at] += weight(i)

			continue
		}
		index[key] = len(db.tracts)
		db.tracts = append(db.tracts, nt)
		db.weights = append(db.weights, weight(i))
	}

	// 6. Aggregate per-code supports from the merged transactions.
	for i, t := range db.tracts {
		for _, c := range t {
			db.supports[c] += db.weights[i]
		}
	}

	return db, &Decoder{names: names}, nil
}

// dedupe removes adjacent duplicates from a sorted code slice in place.
func dedupe(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, c := range s[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}

	return out
}

// SPDX-License-Identifier: MIT
//
// Package core provides the shared data layer for frequent-itemset mining:
// the item encoder, the immutable transaction database, and the contracts
// (emission callback, shared options, error taxonomy) that every search
// strategy builds on.
//
// 🚀 What lives here?
//
//	• Encode — maps caller item identifiers to dense integer codes ordered
//	  by descending weighted support, merges duplicate transactions, and
//	  returns an immutable *Database plus a *Decoder for the way back.
//	• Database — weighted transactions in canonical form (item codes
//	  strictly increasing inside each transaction), per-item supports,
//	  conditional projections and vertical transaction-index lists.
//	• Emit / Pattern — the streaming contract between strategies and
//	  consumers (closure index, reporter).
//	• MineOptions — support threshold, size window and context shared by
//	  all strategies (apriori, eclat, relim, fpgrowth).
//
// ✨ Core invariants:
//
//   - Item codes form the contiguous range [0, n); code order is descending
//     weighted support, ties broken by first appearance in the input.
//     Several strategies rely on this order for correct pruning.
//   - A Database never mutates after Encode returns. Project and
//     VerticalList produce read-only snapshots borrowing nothing mutable.
//   - Support thresholds follow the sign convention: negative values are
//     absolute weighted counts, non-negative values are percentages of the
//     total transaction weight. Resolve() turns either form into an
//     inclusive absolute lower bound.
//
// ⚙️ Usage:
//
//	db, dec, err := core.Encode([][]string{{"a", "b"}, {"b", "c"}})
//	if err != nil { ... }
//	bound := db.Resolve(-1.0) // absolute minimum support 1.0
//
// Complexity: encoding is O(T·L log L) for T transactions of length ≤ L;
// Project and VerticalList are O(total items) per call.
package core

// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options shared by all search strategies.

package core

import (
	"context"
	"fmt"
	"math"
)

// MineOption configures a search strategy via functional arguments.
// Invalid arguments are recorded internally and surfaced as
// ErrOptionViolation when mining is invoked, never mid-search.
type MineOption func(*MineOptions)

// MineOptions holds the parameters shared by every search strategy
// (apriori, eclat, relim, fpgrowth).
type MineOptions struct {
	// Ctx allows cooperative cancellation; see Interrupted.
	Ctx context.Context

	// Supp is the minimum support threshold under the sign convention:
	// negative = absolute weighted count, non-negative = percentage of the
	// total transaction weight. The resolved bound is inclusive.
	Supp float64

	// ZMin is the minimum reported itemset size. 0 additionally requests
	// the empty itemset (whose support is the total database weight).
	ZMin int

	// ZMax is the maximum reported itemset size; 0 means unbounded.
	ZMax int

	// internal error recorded during option parsing
	err error
}

// DefaultMineOptions returns the option set every strategy starts from:
// background context, 10% minimum support, sizes 1..unbounded.
// The defaults mirror the historical callable surface.
func DefaultMineOptions() MineOptions {
	return MineOptions{
		Ctx:  context.Background(),
		Supp: 10,
		ZMin: 1,
		ZMax: 0,
		err:  nil,
	}
}

// WithContext sets a custom context for cooperative cancellation.
func WithContext(ctx context.Context) MineOption {
	return func(o *MineOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSupport sets the minimum support threshold (sign convention as on
// MineOptions.Supp). NaN is rejected as an option violation.
func WithSupport(supp float64) MineOption {
	return func(o *MineOptions) {
		if math.IsNaN(supp) {
			o.err = fmt.Errorf("%w: support threshold is NaN", ErrOptionViolation)

			return
		}
		o.Supp = supp
	}
}

// WithSizeRange bounds the reported itemset cardinality.
//
//	zmin >= 0: minimum size (0 requests the empty itemset as well)
//	zmax == 0: explicit "no upper bound"
//	zmax > 0:  maximum size; must satisfy zmax >= zmin
func WithSizeRange(zmin, zmax int) MineOption {
	return func(o *MineOptions) {
		switch {
		case zmin < 0:
			o.err = fmt.Errorf("%w: zmin cannot be negative (%d)", ErrOptionViolation, zmin)
		case zmax < 0:
			o.err = fmt.Errorf("%w: zmax cannot be negative (%d)", ErrOptionViolation, zmax)
		case zmax > 0 && zmax < zmin:
			o.err = fmt.Errorf("%w: zmax (%d) must be >= zmin (%d)", ErrOptionViolation, zmax, zmin)
		default:
			o.ZMin, o.ZMax = zmin, zmax
		}
	}
}

// Validate applies opts on top of the defaults and reports the first
// recorded option violation, if any. Strategies call it before touching
// the database, honoring the eager-rejection contract.
func (o *MineOptions) Validate(opts ...MineOption) error {
	for _, opt := range opts {
		opt(o)
	}

	return o.err
}

// SizeOK reports whether an itemset of cardinality n falls inside the
// configured [ZMin, ZMax] window.
func (o *MineOptions) SizeOK(n int) bool {
	return n >= o.ZMin && (o.ZMax == 0 || n <= o.ZMax)
}

// DepthCap returns the maximum itemset size a strategy needs to explore:
// ZMax when bounded, otherwise the item count of the database.
func (o *MineOptions) DepthCap(db *Database) int {
	if o.ZMax > 0 {
		return o.ZMax
	}

	return db.ItemCount()
}

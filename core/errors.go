// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: module-wide error taxonomy shared by every mining package.

package core

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors forming the mining error taxonomy. All more specific
// errors wrap one of the four base conditions, so callers can classify
// failures with errors.Is against the base sentinel alone.
var (
	// ErrInvalidInput reports malformed transactions or items detected at
	// encode time. Not recoverable; surfaced before any mining begins.
	ErrInvalidInput = errors.New("fim: invalid input")

	// ErrNoTransactions is returned by Encode when the input holds no
	// transactions at all.
	ErrNoTransactions = fmt.Errorf("%w: empty transaction database", ErrInvalidInput)

	// ErrEmptyItem is returned by Encode when a transaction contains an
	// empty item identifier.
	ErrEmptyItem = fmt.Errorf("%w: empty item identifier", ErrInvalidInput)

	// ErrBadWeight is returned by Encode when a transaction weight is not
	// strictly positive and finite.
	ErrBadWeight = fmt.Errorf("%w: transaction weight must be positive and finite", ErrInvalidInput)

	// ErrWeightCount is returned by Encode when WithWeights supplies a
	// slice whose length differs from the number of transactions.
	ErrWeightCount = fmt.Errorf("%w: weights do not match transactions", ErrInvalidInput)

	// ErrOverflow reports a weight accumulator leaving the representable
	// range (the running sum reached ±Inf). Fatal; aborts the call.
	ErrOverflow = errors.New("fim: weight accumulator overflow")

	// ErrAborted reports that a cooperative interrupt (context
	// cancellation) was honored. A strategy returning ErrAborted has not
	// emitted a silently truncated result.
	ErrAborted = errors.New("fim: mining aborted")

	// ErrInvalidConfig reports configuration rejected eagerly, before any
	// database scan (zmax < zmin, unknown target, unknown strategy, ...).
	ErrInvalidConfig = errors.New("fim: invalid configuration")

	// ErrOptionViolation is recorded when a functional option receives an
	// invalid argument and surfaced when mining is invoked.
	ErrOptionViolation = fmt.Errorf("%w: invalid option", ErrInvalidConfig)

	// ErrStop may be returned by an Emit callback to terminate enumeration
	// early. Strategies swallow it and return nil: stopping the pull is a
	// normal completion, not a failure.
	ErrStop = errors.New("fim: stop enumeration")

	// ErrNilDatabase is returned when a strategy receives a nil database.
	ErrNilDatabase = fmt.Errorf("%w: nil database", ErrInvalidInput)

	// ErrNilEmit is returned when a strategy receives a nil emit callback.
	ErrNilEmit = fmt.Errorf("%w: nil emit callback", ErrInvalidInput)
)

// Interrupted polls ctx and converts a pending cancellation into
// ErrAborted, wrapping the context's own error for detail. It returns nil
// when the context is still live. Strategies call it at their defined
// suspension points (once per transaction scan or candidate extension).
func Interrupted(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	default:
		return nil
	}
}

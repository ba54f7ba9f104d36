// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: shared value types of the mining pipeline (patterns, emission
//       contract, decoder).

package core

import "errors"

// Pattern is one mined result in code space: a sorted itemset plus its
// weighted support. Set is always strictly increasing.
type Pattern struct {
	Set  []int
	Supp float64
}

// Emit receives one (itemset, support) pair from a search strategy.
//
// The set slice is only valid for the duration of the call — strategies
// reuse their scratch buffers between emissions, so consumers that retain
// the itemset must copy it. Returning ErrStop terminates the enumeration
// without error; any other non-nil error aborts the search and is
// propagated to the caller unchanged.
type Emit func(set []int, supp float64) error

// Decoder maps dense item codes back to the caller's item identifiers.
// It is produced by Encode alongside the Database and stays valid for the
// lifetime of the mining call.
type Decoder struct {
	names []string // index = item code
}

// Len returns the number of encoded items (the code range is [0, Len)).
func (d *Decoder) Len() int { return len(d.names) }

// Name returns the original identifier for a single item code.
// Codes outside [0, Len) yield the empty string.
func (d *Decoder) Name(code int) string {
	if code < 0 || code >= len(d.names) {
		return ""
	}

	return d.names[code]
}

// Decode maps a whole itemset back to original identifiers, preserving
// the set's code order. The returned slice is freshly allocated.
func (d *Decoder) Decode(set []int) []string {
	out := make([]string, len(set))
	for i, code := range set {
		out[i] = d.Name(code)
	}

	return out
}

// Deliver forwards one pattern to emit, translating the ErrStop sentinel
// into a plain stop signal. Strategies treat stop == true with err == nil
// as a normal early termination requested by the consumer.
func Deliver(emit Emit, set []int, supp float64) (stop bool, err error) {
	switch err = emit(set, supp); {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrStop):
		return true, nil
	default:
		return true, err
	}
}

// Key renders an itemset as a compact string usable as a map key.
// Itemsets are sorted, so equal sets always produce equal keys.
func Key(set []int) string {
	// 4 bytes per code keeps keys unique for any realistic item universe.
	buf := make([]byte, 0, 4*len(set))
	for _, c := range set {
		buf = append(buf, byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
	}

	return string(buf)
}

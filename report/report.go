package report

import (
	"github.com/katalvlaran/fim/core"
)

// Scale selects how the reporter expresses support values.
type Scale int

const (
	// Absolute reports the weighted transaction count as-is.
	Absolute Scale = iota

	// Relative reports support as a fraction of the total weight.
	Relative

	// Percent reports support as a percentage of the total weight.
	Percent
)

// Pattern is one caller-visible result record. Field order is part of the
// compatibility surface and must not change.
type Pattern struct {
	Items   []string
	Support float64
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithSizeRange bounds the reported itemset cardinality (zmin..zmax,
// zmax == 0 meaning unbounded). Invalid combinations surface from
// Validate as core.ErrOptionViolation.
func WithSizeRange(zmin, zmax int) Option {
	return func(r *Reporter) { r.zmin, r.zmax = zmin, zmax }
}

// WithLimit caps the number of reported results; 0 means unlimited.
// When the cap is reached the reporter's Emit returns core.ErrStop so the
// strategy can cease enumeration.
func WithLimit(n int) Option {
	return func(r *Reporter) { r.limit = n }
}

// WithScale selects the support representation (default Absolute).
func WithScale(s Scale) Option {
	return func(r *Reporter) { r.scale = s }
}

// Reporter collects and decodes accepted patterns in arrival order.
type Reporter struct {
	dec      *core.Decoder
	zmin     int
	zmax     int
	limit    int
	scale    Scale
	patterns []Pattern
}

// New creates a Reporter decoding through dec.
func New(dec *core.Decoder, opts ...Option) *Reporter {
	r := &Reporter{dec: dec, zmin: 1}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Validate rejects inconsistent reporter configuration eagerly.
func (r *Reporter) Validate() error {
	o := core.DefaultMineOptions()
	if err := o.Validate(core.WithSizeRange(r.zmin, r.zmax)); err != nil {
		return err
	}
	if r.limit < 0 {
		return core.ErrOptionViolation
	}

	return nil
}

// Emit adapts the reporter into an emission callback. total is the
// database's total weight, used for Relative/Percent scaling.
func (r *Reporter) Emit(total float64) core.Emit {
	return func(set []int, supp float64) error {
		return r.Add(set, supp, total)
	}
}

// Add records one pattern if it passes the size window, returning
// core.ErrStop once the result cap is reached.
func (r *Reporter) Add(set []int, supp float64, total float64) error {
	if len(set) < r.zmin || (r.zmax > 0 && len(set) > r.zmax) {
		return nil
	}
	if r.limit > 0 && len(r.patterns) >= r.limit {
		return core.ErrStop
	}
	switch r.scale {
	case Relative:
		supp /= total
	case Percent:
		supp = supp * 100 / total
	}
	r.patterns = append(r.patterns, Pattern{Items: r.dec.Decode(set), Support: supp})
	if r.limit > 0 && len(r.patterns) >= r.limit {
		return core.ErrStop
	}

	return nil
}

// Patterns returns the collected records in arrival order.
func (r *Reporter) Patterns() []Pattern { return r.patterns }

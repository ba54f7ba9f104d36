package rules

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fim/core"
)

// ErrMissingSupport reports an internal consistency violation between the
// mining and rule-generation phases: a subset's support is absent from
// the supplied pattern collection. Fatal; indicates the pattern set and
// the database it was mined from do not match.
var ErrMissingSupport = errors.New("rules: missing support data for subset")

// Evaluator computes one secondary statistic from raw contingency counts:
// the supports of the whole itemset, the antecedent (body), the
// consequent (head), and the total transaction weight. The generator
// invokes evaluators with precomputed counts and never computes
// statistics itself.
type Evaluator func(set, body, head, total float64) float64

// Lift is support(set)·total / (support(body)·support(head)); 0 when a
// marginal support vanishes.
func Lift(set, body, head, total float64) float64 {
	if body <= 0 || head <= 0 {
		return 0
	}

	return set * total / (body * head)
}

// Leverage is the difference between the joint relative support and the
// product of the marginal relative supports.
func Leverage(set, body, head, total float64) float64 {
	if total <= 0 {
		return 0
	}

	return set/total - (body/total)*(head/total)
}

// Rule is one caller-visible association rule. Field order is part of the
// compatibility surface and must not change.
type Rule struct {
	Antecedent []string
	Consequent []string
	Support    float64
	Confidence float64
	Extra      []float64
}

// Option configures Generate.
type Option func(*options)

type options struct {
	minConf    float64
	minSupp    float64
	evaluators []Evaluator
	err        error
}

// WithMinConfidence sets the minimum confidence as a fraction in [0, 1]
// (default 0.8). The bound is inclusive.
func WithMinConfidence(c float64) Option {
	return func(o *options) {
		if c < 0 || c > 1 {
			o.err = fmt.Errorf("%w: confidence must be in [0,1] (%g)", core.ErrOptionViolation, c)

			return
		}
		o.minConf = c
	}
}

// WithMinSupport sets the minimum itemset support for rule heads under
// the usual sign convention (default 10, i.e. 10%).
func WithMinSupport(s float64) Option {
	return func(o *options) { o.minSupp = s }
}

// WithEvaluators appends secondary measures computed per accepted rule,
// in order, into Rule.Extra.
func WithEvaluators(evs ...Evaluator) Option {
	return func(o *options) { o.evaluators = append(o.evaluators, evs...) }
}

// Generate derives association rules from the frequent patterns mined
// over db. Enumeration order is deterministic: patterns in the given
// order, antecedents by size ascending, lexicographically within a size.
// Supports in the result are absolute weighted counts.
func Generate(patterns []core.Pattern, db *core.Database, dec *core.Decoder, opts ...Option) ([]Rule, error) {
	if db == nil {
		return nil, core.ErrNilDatabase
	}
	o := options{minConf: 0.8, minSupp: 10}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	bound := db.Resolve(o.minSupp)

	// Support lookup for antecedents and consequents.
	supps := make(map[string]float64, len(patterns))
	for _, p := range patterns {
		supps[core.Key(p.Set)] = p.Supp
	}

	out := make([]Rule, 0)
	body := make([]int, 0, 16)
	head := make([]int, 0, 16)
	for _, p := range patterns {
		if len(p.Set) < 2 || p.Supp < bound {
			continue
		}
		for size := 1; size < len(p.Set); size++ {
			err := combinations(p.Set, size, body[:0], func(ante []int) error {
				r, ok, cErr := derive(p, ante, &head, supps, db.Total(), &o)
				if cErr != nil {
					return cErr
				}
				if ok {
					out = append(out, r.decoded(dec, ante, head))
				}

				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// derive computes one candidate rule; ok is false when the confidence
// threshold is not met.
func derive(p core.Pattern, ante []int, head *[]int, supps map[string]float64, total float64, o *options) (Rule, bool, error) {
	bodySupp, ok := supps[core.Key(ante)]
	if !ok {
		return Rule{}, false, fmt.Errorf("%w: antecedent %v", ErrMissingSupport, ante)
	}
	conf := p.Supp / bodySupp
	if conf < o.minConf {
		return Rule{}, false, nil
	}

	// Complement of the antecedent inside the itemset.
	*head = (*head)[:0]
	ai := 0
	for _, c := range p.Set {
		if ai < len(ante) && ante[ai] == c {
			ai++

			continue
		}
		*head = append(*head, c)
	}

	r := Rule{Support: p.Supp, Confidence: conf}
	if len(o.evaluators) > 0 {
		headSupp, ok := supps[core.Key(*head)]
		if !ok {
			return Rule{}, false, fmt.Errorf("%w: consequent %v", ErrMissingSupport, *head)
		}
		r.Extra = make([]float64, len(o.evaluators))
		for i, ev := range o.evaluators {
			r.Extra[i] = ev(p.Supp, bodySupp, headSupp, total)
		}
	}

	return r, true, nil
}

// decoded fills in the identifier slices of a rule.
func (r Rule) decoded(dec *core.Decoder, ante, head []int) Rule {
	r.Antecedent = dec.Decode(ante)
	r.Consequent = dec.Decode(head)

	return r
}

// combinations enumerates the size-k subsets of the sorted set in
// lexicographic order, reusing buf as scratch.
func combinations(set []int, k int, buf []int, fn func([]int) error) error {
	if k == 0 {
		return fn(buf)
	}
	for i := 0; i+k <= len(set); i++ {
		if err := combinations(set[i+1:], k-1, append(buf, set[i]), fn); err != nil {
			return err
		}
	}

	return nil
}

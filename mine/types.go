package mine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/report"
	"github.com/katalvlaran/fim/rules"
)

// Target selects what the pipeline reports.
type Target int

const (
	// TargetAll reports every frequent itemset.
	TargetAll Target = iota

	// TargetClosed reports frequent itemsets without an equal-support
	// strict superset.
	TargetClosed

	// TargetMaximal reports frequent itemsets without any frequent strict
	// superset.
	TargetMaximal

	// TargetGenerators reports frequent itemsets without an equal-support
	// strict subset.
	TargetGenerators

	// TargetRules derives association rules instead of itemsets.
	TargetRules
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// StrategyApriori is breadth-first level-wise search.
	StrategyApriori Strategy = iota

	// StrategyEclat is depth-first vertical-list intersection.
	StrategyEclat

	// StrategyRelim is tree-projection / recursive elimination.
	StrategyRelim

	// StrategyFPGrowth is prefix/pattern-tree accretion.
	StrategyFPGrowth
)

// Option configures one mining call.
type Option func(*Config)

// Config holds the resolved configuration of one call. Zero value plus
// defaults() mirrors the historical surface.
type Config struct {
	Target     Target
	Strategy   Strategy
	Supp       float64 // sign convention: negative absolute, else percent
	Conf       float64 // percent, rules target only
	ZMin       int
	ZMax       int // 0 = unbounded
	Limit      int // 0 = unlimited
	Scale      report.Scale
	Ctx        context.Context
	Weights    []float64
	Evaluators []rules.Evaluator

	err error
}

func defaults() Config {
	return Config{
		Target:   TargetAll,
		Strategy: StrategyApriori,
		Supp:     10,
		Conf:     80,
		ZMin:     1,
		ZMax:     0,
		Ctx:      context.Background(),
	}
}

// WithTarget selects the reported pattern family (default TargetAll).
func WithTarget(t Target) Option {
	return func(c *Config) { c.Target = t }
}

// WithStrategy selects the search algorithm (default StrategyApriori).
func WithStrategy(s Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}

// WithSupport sets the minimum support threshold: negative = absolute
// weighted count, non-negative = percentage of the total weight.
func WithSupport(supp float64) Option {
	return func(c *Config) { c.Supp = supp }
}

// WithConfidence sets the minimum rule confidence in percent (default 80).
func WithConfidence(conf float64) Option {
	return func(c *Config) {
		if conf < 0 || conf > 100 {
			c.err = fmt.Errorf("%w: confidence must be in [0,100] (%g)", core.ErrOptionViolation, conf)

			return
		}
		c.Conf = conf
	}
}

// WithSizeRange bounds the reported itemset cardinality (zmax == 0 means
// unbounded).
func WithSizeRange(zmin, zmax int) Option {
	return func(c *Config) { c.ZMin, c.ZMax = zmin, zmax }
}

// WithLimit caps the number of reported records (0 = unlimited).
func WithLimit(n int) Option {
	return func(c *Config) { c.Limit = n }
}

// WithScale selects the support representation of reported patterns.
func WithScale(s report.Scale) Option {
	return func(c *Config) { c.Scale = s }
}

// WithContext enables cooperative cancellation of the call.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithWeights attaches per-transaction weights (occurrence counts).
func WithWeights(ws []float64) Option {
	return func(c *Config) { c.Weights = ws }
}

// WithEvaluators appends secondary rule measures (rules target only).
func WithEvaluators(evs ...rules.Evaluator) Option {
	return func(c *Config) { c.Evaluators = append(c.Evaluators, evs...) }
}

// validate rejects inconsistent configuration before any database work.
func (c *Config) validate() error {
	if c.err != nil {
		return c.err
	}
	if c.Target < TargetAll || c.Target > TargetRules {
		return fmt.Errorf("mine: %w: unknown target %d", core.ErrInvalidConfig, c.Target)
	}
	if c.Strategy < StrategyApriori || c.Strategy > StrategyFPGrowth {
		return fmt.Errorf("mine: %w: unknown strategy %d", core.ErrInvalidConfig, c.Strategy)
	}
	o := core.DefaultMineOptions()

	return o.Validate(core.WithSizeRange(c.ZMin, c.ZMax), core.WithSupport(c.Supp))
}

// Result carries the outcome of one call: Patterns for itemset targets,
// Rules for the rules target.
type Result struct {
	Patterns []report.Pattern
	Rules    []rules.Rule
}

package mine

import (
	"github.com/katalvlaran/fim/apriori"
	"github.com/katalvlaran/fim/closure"
	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/eclat"
	"github.com/katalvlaran/fim/fpgrowth"
	"github.com/katalvlaran/fim/relim"
	"github.com/katalvlaran/fim/report"
	"github.com/katalvlaran/fim/rules"
)

// mineFunc is the shared strategy contract every search package fulfils.
type mineFunc func(*core.Database, core.Emit, ...core.MineOption) error

func strategyFunc(s Strategy) mineFunc {
	switch s {
	case StrategyEclat:
		return eclat.Mine
	case StrategyRelim:
		return relim.Mine
	case StrategyFPGrowth:
		return fpgrowth.Mine
	default:
		return apriori.Mine
	}
}

// Run executes one full mining call over raw transactions.
func Run(tracts [][]string, opts ...Option) (*Result, error) {
	// 1. Resolve and validate configuration before touching the data.
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 2. Encode: every call owns its encoder, database and decoder.
	var encOpts []core.EncodeOption
	if cfg.Weights != nil {
		encOpts = append(encOpts, core.WithWeights(cfg.Weights))
	}
	db, dec, err := core.Encode(tracts, encOpts...)
	if err != nil {
		return nil, err
	}
	search := strategyFunc(cfg.Strategy)

	switch cfg.Target {
	case TargetAll:
		return allFrequent(cfg, db, dec, search)
	case TargetRules:
		return deriveRules(cfg, db, dec, search)
	default:
		return closureFiltered(cfg, db, dec, search)
	}
}

// Apriori mines with the breadth-first level-wise strategy.
func Apriori(tracts [][]string, opts ...Option) (*Result, error) {
	return Run(tracts, append(opts, WithStrategy(StrategyApriori))...)
}

// Eclat mines with depth-first vertical-list intersection.
func Eclat(tracts [][]string, opts ...Option) (*Result, error) {
	return Run(tracts, append(opts, WithStrategy(StrategyEclat))...)
}

// Relim mines with tree-projection / recursive elimination.
func Relim(tracts [][]string, opts ...Option) (*Result, error) {
	return Run(tracts, append(opts, WithStrategy(StrategyRelim))...)
}

// FPGrowth mines with prefix/pattern-tree accretion.
func FPGrowth(tracts [][]string, opts ...Option) (*Result, error) {
	return Run(tracts, append(opts, WithStrategy(StrategyFPGrowth))...)
}

// allFrequent streams the strategy's output straight into the reporter.
func allFrequent(cfg Config, db *core.Database, dec *core.Decoder, search mineFunc) (*Result, error) {
	rep := report.New(dec,
		report.WithSizeRange(cfg.ZMin, cfg.ZMax),
		report.WithLimit(cfg.Limit),
		report.WithScale(cfg.Scale))
	if err := rep.Validate(); err != nil {
		return nil, err
	}
	err := search(db, rep.Emit(db.Total()),
		core.WithContext(cfg.Ctx),
		core.WithSupport(cfg.Supp),
		core.WithSizeRange(cfg.ZMin, cfg.ZMax))
	if err != nil {
		return nil, err
	}

	return &Result{Patterns: rep.Patterns()}, nil
}

// closureFiltered runs the strategy over the full frequent space, filters
// through the closure index, then applies the size window at report time.
func closureFiltered(cfg Config, db *core.Database, dec *core.Decoder, search mineFunc) (*Result, error) {
	ix, err := closure.New(indexMode(cfg.Target))
	if err != nil {
		return nil, err
	}
	// Generators need the empty itemset in the stream: a singleton present
	// in every transaction has an equal-support subset — the empty set.
	// It is also needed whenever the caller asked for zmin == 0.
	zmin := 1
	if cfg.Target == TargetGenerators || cfg.ZMin == 0 {
		zmin = 0
	}
	err = search(db, ix.Emit(),
		core.WithContext(cfg.Ctx),
		core.WithSupport(cfg.Supp),
		core.WithSizeRange(zmin, 0))
	if err != nil {
		return nil, err
	}

	rep := report.New(dec,
		report.WithSizeRange(cfg.ZMin, cfg.ZMax),
		report.WithLimit(cfg.Limit),
		report.WithScale(cfg.Scale))
	if err = rep.Validate(); err != nil {
		return nil, err
	}
	for _, p := range ix.Patterns() {
		if err = rep.Add(p.Set, p.Supp, db.Total()); err != nil {
			break // core.ErrStop: the result cap is reached
		}
	}

	return &Result{Patterns: rep.Patterns()}, nil
}

// deriveRules mines the full frequent collection first, then derives
// rules; the size window bounds the rule's underlying itemset.
func deriveRules(cfg Config, db *core.Database, dec *core.Decoder, search mineFunc) (*Result, error) {
	patterns := make([]core.Pattern, 0)
	collect := func(set []int, supp float64) error {
		cp := make([]int, len(set))
		copy(cp, set)
		patterns = append(patterns, core.Pattern{Set: cp, Supp: supp})

		return nil
	}
	err := search(db, collect,
		core.WithContext(cfg.Ctx),
		core.WithSupport(cfg.Supp),
		core.WithSizeRange(1, 0))
	if err != nil {
		return nil, err
	}

	rs, err := rules.Generate(patterns, db, dec,
		rules.WithMinConfidence(cfg.Conf/100),
		rules.WithMinSupport(cfg.Supp),
		rules.WithEvaluators(cfg.Evaluators...))
	if err != nil {
		return nil, err
	}
	rs = sizeWindow(rs, cfg.ZMin, cfg.ZMax)
	if cfg.Limit > 0 && len(rs) > cfg.Limit {
		rs = rs[:cfg.Limit]
	}

	return &Result{Rules: rs}, nil
}

// sizeWindow keeps rules whose underlying itemset size falls inside the
// configured window.
func sizeWindow(rs []rules.Rule, zmin, zmax int) []rules.Rule {
	out := rs[:0]
	for _, r := range rs {
		n := len(r.Antecedent) + len(r.Consequent)
		if n < zmin || (zmax > 0 && n > zmax) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func indexMode(t Target) closure.Mode {
	switch t {
	case TargetClosed:
		return closure.ModeClosed
	case TargetMaximal:
		return closure.ModeMaximal
	case TargetGenerators:
		return closure.ModeGenerators
	default:
		return closure.ModeAll
	}
}

package mine_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/mine"
	"github.com/katalvlaran/fim/report"
	"github.com/katalvlaran/fim/rules"
)

// scenario is the reference weighted input shared by the end-to-end tests.
func scenario() ([][]string, []float64) {
	tracts := [][]string{
		{"1", "2", "3"},
		{"1", "4", "5"},
		{"2", "3", "4"},
		{"1", "2", "3", "4"},
		{"2", "3"},
		{"1", "2", "4"},
		{"4", "5"},
		{"1", "2", "3", "4"},
		{"3", "4", "5"},
	}
	weights := []float64{0.5, 1.2, 0.8, 0.3, 1.5, 0.9, 0.6, 1.0, 0.7}

	return tracts, weights
}

// asMap renders the result patterns as sorted comma-joined item keys.
func asMap(ps []report.Pattern) map[string]float64 {
	out := make(map[string]float64, len(ps))
	for _, p := range ps {
		items := append([]string(nil), p.Items...)
		sort.Strings(items)
		out[strings.Join(items, ",")] = p.Support
	}

	return out
}

// TestRun_StrategyEquivalence verifies the load-bearing property that all
// four strategies report the same frequent collection.
func TestRun_StrategyEquivalence(t *testing.T) {
	tracts, weights := scenario()
	base := []mine.Option{
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithSizeRange(1, 0),
	}

	results := make([]map[string]float64, 0, 4)
	for _, s := range []mine.Strategy{
		mine.StrategyApriori, mine.StrategyEclat, mine.StrategyRelim, mine.StrategyFPGrowth,
	} {
		res, err := mine.Run(tracts, append(base, mine.WithStrategy(s))...)
		require.NoError(t, err, "strategy %d", s)
		results = append(results, asMap(res.Patterns))
	}

	require.Len(t, results[0], 15, "5 singletons + 7 pairs + 3 triples")
	for i := 1; i < len(results); i++ {
		require.Len(t, results[i], len(results[0]), "strategy %d cardinality", i)
		for set, supp := range results[0] {
			assert.InDelta(t, supp, results[i][set], 1e-9, "strategy %d, itemset {%s}", i, set)
		}
	}
}

// TestRun_Scenario checks the documented reference outcome: absolute
// threshold 1.6, itemsets of at least two items.
func TestRun_Scenario(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Eclat(tracts,
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithSizeRange(2, 0))
	require.NoError(t, err)

	got := asMap(res.Patterns)
	require.Len(t, got, 10)
	assert.InDelta(t, 4.1, got["2,3"], 1e-9, "the documented {2,3} support")
}

// TestRun_Closed verifies the closed collection: everything frequent
// except {5} (absorbed by {4,5}) and {1,3} (absorbed by {1,2,3}).
func TestRun_Closed(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Run(tracts,
		mine.WithTarget(mine.TargetClosed),
		mine.WithWeights(weights),
		mine.WithSupport(-1.6))
	require.NoError(t, err)

	got := asMap(res.Patterns)
	assert.Len(t, got, 13)
	assert.NotContains(t, got, "5")
	assert.NotContains(t, got, "1,3")
	assert.Contains(t, got, "4,5")
	assert.Contains(t, got, "1,2,3")
}

// TestRun_Maximal verifies the maximal collection: the three frequent
// triples plus {4,5}.
func TestRun_Maximal(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Run(tracts,
		mine.WithTarget(mine.TargetMaximal),
		mine.WithWeights(weights),
		mine.WithSupport(-1.6))
	require.NoError(t, err)

	got := asMap(res.Patterns)
	want := map[string]float64{"1,2,3": 1.8, "1,2,4": 2.2, "2,3,4": 2.1, "4,5": 2.5}
	require.Len(t, got, len(want))
	for set, supp := range want {
		assert.InDelta(t, supp, got[set], 1e-9, "maximal itemset {%s}", set)
	}
}

// TestRun_Generators verifies the generator collection: {4,5} falls to
// its equal-support subset {5}, {1,2,3} to {1,3}.
func TestRun_Generators(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Run(tracts,
		mine.WithTarget(mine.TargetGenerators),
		mine.WithWeights(weights),
		mine.WithSupport(-1.6))
	require.NoError(t, err)

	got := asMap(res.Patterns)
	assert.Len(t, got, 13)
	assert.Contains(t, got, "5")
	assert.Contains(t, got, "1,3")
	assert.NotContains(t, got, "4,5", "{5} has the same support 2.5")
	assert.NotContains(t, got, "1,2,3", "{1,3} has the same support 1.8")
}

// TestRun_ContainmentChain checks maximal ⊆ closed ⊆ all end to end.
func TestRun_ContainmentChain(t *testing.T) {
	tracts, weights := scenario()
	collect := func(target mine.Target) map[string]float64 {
		res, err := mine.Run(tracts,
			mine.WithTarget(target),
			mine.WithWeights(weights),
			mine.WithSupport(-1.6))
		require.NoError(t, err)

		return asMap(res.Patterns)
	}

	all := collect(mine.TargetAll)
	closed := collect(mine.TargetClosed)
	maximal := collect(mine.TargetMaximal)

	for set := range maximal {
		assert.Contains(t, closed, set)
	}
	for set, supp := range closed {
		require.Contains(t, all, set)
		assert.InDelta(t, all[set], supp, 1e-9, "filtering must not change supports")
	}
}

// TestRun_Rules verifies the end-to-end rule derivation at the default
// 80% confidence.
func TestRun_Rules(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Run(tracts,
		mine.WithTarget(mine.TargetRules),
		mine.WithWeights(weights),
		mine.WithSupport(-1.6))
	require.NoError(t, err)
	require.Nil(t, res.Patterns, "rules target reports rules only")

	byKey := make(map[string]rules.Rule, len(res.Rules))
	for _, r := range res.Rules {
		byKey[strings.Join(r.Antecedent, ",")+"->"+strings.Join(r.Consequent, ",")] = r
	}
	require.Len(t, byKey, 6)

	r, ok := byKey["5->4"]
	require.True(t, ok, "5 -> 4 holds in every transaction with 5")
	assert.InDelta(t, 1.0, r.Confidence, 1e-9)
	assert.InDelta(t, 2.5, r.Support, 1e-9)

	r, ok = byKey["1->4"]
	require.True(t, ok)
	assert.InDelta(t, 3.4/3.9, r.Confidence, 1e-9)

	_, ok = byKey["2->1"]
	assert.False(t, ok, "confidence 0.54 is below the bound")
}

// TestRun_RulesWithEvaluators threads extra measures through the facade.
func TestRun_RulesWithEvaluators(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Run(tracts,
		mine.WithTarget(mine.TargetRules),
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithEvaluators(rules.Lift))
	require.NoError(t, err)
	require.NotEmpty(t, res.Rules)

	for _, r := range res.Rules {
		require.Len(t, r.Extra, 1)
		assert.Greater(t, r.Extra[0], 0.0, "lift of a frequent rule is positive")
	}
}

// TestRun_Limit truncates the result stream at the cap.
func TestRun_Limit(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Apriori(tracts,
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithLimit(3))
	require.NoError(t, err)
	assert.Len(t, res.Patterns, 3)
}

// TestRun_PercentScale reports supports as percentages of the total 7.5.
func TestRun_PercentScale(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Eclat(tracts,
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithSizeRange(2, 2),
		mine.WithScale(report.Percent))
	require.NoError(t, err)

	got := asMap(res.Patterns)
	assert.InDelta(t, 4.1*100/7.5, got["2,3"], 1e-9)
}

// TestRun_SizeCapBelowSmallest yields an empty, non-nil result.
func TestRun_SizeCapBelowSmallest(t *testing.T) {
	tracts, weights := scenario()
	res, err := mine.Run(tracts,
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithSizeRange(4, 0))
	require.NoError(t, err)
	assert.Empty(t, res.Patterns, "no frequent itemset reaches four items")
}

// TestRun_InvalidConfig covers the eager configuration checks.
func TestRun_InvalidConfig(t *testing.T) {
	tracts, _ := scenario()

	_, err := mine.Run(tracts, mine.WithTarget(mine.Target(9)))
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	_, err = mine.Run(tracts, mine.WithStrategy(mine.Strategy(9)))
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	_, err = mine.Run(tracts, mine.WithConfidence(150))
	assert.ErrorIs(t, err, core.ErrOptionViolation)

	_, err = mine.Run(tracts, mine.WithSizeRange(5, 2))
	assert.ErrorIs(t, err, core.ErrOptionViolation)

	_, err = mine.Run(nil)
	assert.ErrorIs(t, err, core.ErrNoTransactions)
}

// TestRun_Cancelled propagates the abort taxonomy through the facade.
func TestRun_Cancelled(t *testing.T) {
	tracts, weights := scenario()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mine.Eclat(tracts,
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithContext(ctx))
	assert.ErrorIs(t, err, core.ErrAborted)
}

// TestRun_Idempotent verifies two identical calls agree byte for byte on
// supports: no state leaks between calls.
func TestRun_Idempotent(t *testing.T) {
	tracts, weights := scenario()
	opts := []mine.Option{
		mine.WithWeights(weights),
		mine.WithSupport(-1.6),
		mine.WithStrategy(mine.StrategyFPGrowth),
	}
	a, err := mine.Run(tracts, opts...)
	require.NoError(t, err)
	b, err := mine.Run(tracts, opts...)
	require.NoError(t, err)
	assert.Equal(t, a.Patterns, b.Patterns)
}

package fpgrowth_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/fpgrowth"
)

func scenarioDB(t *testing.T) (*core.Database, *core.Decoder) {
	t.Helper()
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
	db, dec, err := core.Encode(tracts, core.WithWeights(weights))
	require.NoError(t, err)

	return db, dec
}

func collect(t *testing.T, db *core.Database, dec *core.Decoder, opts ...core.MineOption) map[string]float64 {
	t.Helper()
	got := make(map[string]float64)
	err := fpgrowth.Mine(db, func(set []int, supp float64) error {
		names := dec.Decode(set)
		sort.Strings(names)
		got[strings.Join(names, ",")] = supp

		return nil
	}, opts...)
	require.NoError(t, err)

	return got
}

// TestMine_Scenario checks the reference result against the pattern-tree
// search.
func TestMine_Scenario(t *testing.T) {
	db, dec := scenarioDB(t)
	got := collect(t, db, dec, core.WithSupport(-1.6), core.WithSizeRange(2, 0))

	want := map[string]float64{
		"1,2": 2.7, "1,3": 1.8, "1,4": 3.4,
		"2,3": 4.1, "2,4": 3.0, "3,4": 2.8, "4,5": 2.5,
		"1,2,3": 1.8, "1,2,4": 2.2, "2,3,4": 2.1,
	}
	require.Len(t, got, len(want))
	for set, supp := range want {
		assert.InDelta(t, supp, got[set], 1e-9, "support of {%s}", set)
	}
}

// TestMine_UnitWeights verifies that the default weighting counts plain
// occurrences: the same transactions without weights give integer
// supports.
func TestMine_UnitWeights(t *testing.T) {
	db, dec, err := core.Encode([][]string{
		{"a", "b", "c"},
		{"a", "b"},
		{"a", "c"},
		{"b", "c"},
		{"a", "b", "c"},
	})
	require.NoError(t, err)

	got := collect(t, db, dec, core.WithSupport(-3))
	want := map[string]float64{
		"a": 4, "b": 4, "c": 4,
		"a,b": 3, "a,c": 3, "b,c": 3,
	}
	assert.Equal(t, want, got)
}

// TestMine_DeepChain exercises conditional-tree recursion on a long
// single path: every sub-path of the chain is frequent.
func TestMine_DeepChain(t *testing.T) {
	chain := make([]string, 8)
	for i := range chain {
		chain[i] = fmt.Sprintf("i%d", i)
	}
	db, dec, err := core.Encode([][]string{chain, chain})
	require.NoError(t, err)

	got := collect(t, db, dec, core.WithSupport(-2))
	assert.Len(t, got, 1<<8-1, "every non-empty subset of the chain")
	assert.Equal(t, 2.0, got[strings.Join(sortedCopy(chain), ",")])
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)

	return out
}

// TestMine_SizeWindow verifies the window applies to reporting only:
// pairs are reported, their frequent superset paths still drive descent.
func TestMine_SizeWindow(t *testing.T) {
	db, dec := scenarioDB(t)
	got := collect(t, db, dec, core.WithSupport(-1.6), core.WithSizeRange(3, 3))

	want := map[string]float64{"1,2,3": 1.8, "1,2,4": 2.2, "2,3,4": 2.1}
	require.Len(t, got, len(want))
	for set, supp := range want {
		assert.InDelta(t, supp, got[set], 1e-9, "support of {%s}", set)
	}
}

// TestMine_EarlyStop verifies ErrStop unwinds the conditional recursion.
func TestMine_EarlyStop(t *testing.T) {
	db, _ := scenarioDB(t)
	n := 0
	err := fpgrowth.Mine(db, func([]int, float64) error {
		if n++; n == 2 {
			return core.ErrStop
		}

		return nil
	}, core.WithSupport(-1.6))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestMine_NilArguments covers the argument taxonomy.
func TestMine_NilArguments(t *testing.T) {
	db, _ := scenarioDB(t)

	assert.ErrorIs(t, fpgrowth.Mine(nil, func([]int, float64) error { return nil }), core.ErrNilDatabase)
	assert.ErrorIs(t, fpgrowth.Mine(db, nil), core.ErrNilEmit)
}

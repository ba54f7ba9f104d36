package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/report"
)

// decoder builds a Decoder over a tiny fixed vocabulary.
func decoder(t *testing.T) *core.Decoder {
	t.Helper()
	_, dec, err := core.Encode([][]string{{"x", "y"}, {"x"}, {"z", "x"}})
	require.NoError(t, err)
	require.Equal(t, "x", dec.Name(0))

	return dec
}

// TestReporter_Decode verifies arrival order and identifier decoding.
func TestReporter_Decode(t *testing.T) {
	r := report.New(decoder(t))
	require.NoError(t, r.Validate())

	require.NoError(t, r.Add([]int{0}, 3, 3))
	require.NoError(t, r.Add([]int{0, 1}, 1, 3))

	ps := r.Patterns()
	require.Len(t, ps, 2)
	assert.Equal(t, []string{"x"}, ps[0].Items)
	assert.Equal(t, 3.0, ps[0].Support)
	assert.ElementsMatch(t, []string{"x", "y"}, ps[1].Items)
}

// TestReporter_SizeWindow drops itemsets outside [zmin, zmax] silently.
func TestReporter_SizeWindow(t *testing.T) {
	r := report.New(decoder(t), report.WithSizeRange(2, 2))

	require.NoError(t, r.Add([]int{0}, 3, 3))
	require.NoError(t, r.Add([]int{0, 1}, 2, 3))
	require.NoError(t, r.Add([]int{0, 1, 2}, 1, 3))

	ps := r.Patterns()
	require.Len(t, ps, 1, "only the pair passes the window")
	assert.Len(t, ps[0].Items, 2)
}

// TestReporter_Limit returns ErrStop at the cap so strategies can cease.
func TestReporter_Limit(t *testing.T) {
	r := report.New(decoder(t), report.WithLimit(2))

	require.NoError(t, r.Add([]int{0}, 3, 3))
	assert.ErrorIs(t, r.Add([]int{1}, 2, 3), core.ErrStop, "cap reached on the second add")
	assert.ErrorIs(t, r.Add([]int{2}, 1, 3), core.ErrStop, "further adds keep signalling")
	assert.Len(t, r.Patterns(), 2)
}

// TestReporter_Scales verifies the three support representations.
func TestReporter_Scales(t *testing.T) {
	for _, tc := range []struct {
		scale report.Scale
		want  float64
	}{
		{report.Absolute, 3},
		{report.Relative, 0.75},
		{report.Percent, 75},
	} {
		r := report.New(decoder(t), report.WithScale(tc.scale))
		require.NoError(t, r.Add([]int{0}, 3, 4))
		assert.InDelta(t, tc.want, r.Patterns()[0].Support, 1e-12, "scale %v", tc.scale)
	}
}

// TestReporter_Validate rejects inconsistent configuration eagerly.
func TestReporter_Validate(t *testing.T) {
	assert.ErrorIs(t, report.New(decoder(t), report.WithSizeRange(3, 1)).Validate(),
		core.ErrOptionViolation)
	assert.ErrorIs(t, report.New(decoder(t), report.WithLimit(-1)).Validate(),
		core.ErrOptionViolation)
	assert.NoError(t, report.New(decoder(t), report.WithSizeRange(0, 0)).Validate())
}

// TestReporter_CopiesSets verifies the reporter does not alias the reused
// emission buffer.
func TestReporter_CopiesSets(t *testing.T) {
	r := report.New(decoder(t))
	buf := []int{0}
	require.NoError(t, r.Emit(3)(buf, 3))
	buf[0] = 2 // strategy reuses its buffer for the next emission
	require.NoError(t, r.Emit(3)(buf, 1))

	ps := r.Patterns()
	require.Len(t, ps, 2)
	assert.Equal(t, []string{"x"}, ps[0].Items, "first record unaffected by buffer reuse")
	assert.Equal(t, []string{"z"}, ps[1].Items)
}

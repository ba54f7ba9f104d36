package tractio_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/internal/tractio"
	"github.com/katalvlaran/fim/report"
	"github.com/katalvlaran/fim/rules"
)

// TestRead_Plain parses unweighted transactions, skipping comments and
// blank lines.
func TestRead_Plain(t *testing.T) {
	in := strings.NewReader(`
# a comment
a b c
b c

c
`)
	tracts, weights, err := tractio.Read(in)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"b", "c"}, {"c"}}, tracts)
	assert.Nil(t, weights, "no explicit weights anywhere")
}

// TestRead_Weighted keeps per-line weights, defaulting absent ones to 1.
func TestRead_Weighted(t *testing.T) {
	in := strings.NewReader("a b :2.5\nb c\nc :0.5\n")
	tracts, weights, err := tractio.Read(in)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"b", "c"}, {"c"}}, tracts)
	assert.Equal(t, []float64{2.5, 1, 0.5}, weights)
}

// TestRead_BadWeight surfaces the invalid-input taxonomy with the line
// number.
func TestRead_BadWeight(t *testing.T) {
	_, _, err := tractio.Read(strings.NewReader("a b :x\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 1")

	_, _, err = tractio.Read(strings.NewReader(":2\n"))
	assert.ErrorIs(t, err, core.ErrInvalidInput, "weight without items")
}

// TestWritePatterns checks the text rendering.
func TestWritePatterns(t *testing.T) {
	var buf bytes.Buffer
	err := tractio.WritePatterns(&buf, []report.Pattern{
		{Items: []string{"a", "b"}, Support: 2.5},
		{Items: []string{"c"}, Support: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "a b : 2.5\nc : 3\n", buf.String())
}

// TestWriteRules checks the text rendering including extra measures.
func TestWriteRules(t *testing.T) {
	var buf bytes.Buffer
	err := tractio.WriteRules(&buf, []rules.Rule{
		{Antecedent: []string{"a"}, Consequent: []string{"b"}, Support: 2, Confidence: 0.5, Extra: []float64{1.25}},
	})
	require.NoError(t, err)
	assert.Equal(t, "a -> b : 2 0.5 1.25\n", buf.String())
}

// TestWritePatternsMsgpack round-trips the record stream.
func TestWritePatternsMsgpack(t *testing.T) {
	var buf bytes.Buffer
	in := []report.Pattern{
		{Items: []string{"a", "b"}, Support: 2.5},
		{Items: []string{"c"}, Support: 3},
	}
	require.NoError(t, tractio.WritePatternsMsgpack(&buf, in))

	dec := msgpack.NewDecoder(&buf)
	var out []tractio.PatternRecord
	for {
		var rec tractio.PatternRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		out = append(out, rec)
	}
	require.Len(t, out, 2)
	assert.Equal(t, in[0].Items, out[0].Items)
	assert.Equal(t, in[0].Support, out[0].Support)
	assert.Equal(t, in[1].Items, out[1].Items)
}

// TestWriteRulesMsgpack round-trips one rule record.
func TestWriteRulesMsgpack(t *testing.T) {
	var buf bytes.Buffer
	in := rules.Rule{
		Antecedent: []string{"a"}, Consequent: []string{"b", "c"},
		Support: 4, Confidence: 0.8, Extra: []float64{1.5, -0.1},
	}
	require.NoError(t, tractio.WriteRulesMsgpack(&buf, []rules.Rule{in}))

	var rec tractio.RuleRecord
	require.NoError(t, msgpack.NewDecoder(&buf).Decode(&rec))
	assert.Equal(t, in.Antecedent, rec.Antecedent)
	assert.Equal(t, in.Consequent, rec.Consequent)
	assert.Equal(t, in.Support, rec.Support)
	assert.Equal(t, in.Confidence, rec.Confidence)
	assert.Equal(t, in.Extra, rec.Extra)
}

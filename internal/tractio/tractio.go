// Package tractio reads transaction files and writes mining results for
// the fim command-line tool.
//
// Input format: one transaction per line, whitespace-separated item
// identifiers, an optional trailing ":<weight>" token, and '#' line
// comments. Output is either plain text ("item item ... : support") or a
// stream of MessagePack records.
package tractio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/fim/core"
	"github.com/katalvlaran/fim/report"
	"github.com/katalvlaran/fim/rules"
)

// PatternRecord is the MessagePack shape of one itemset result.
type PatternRecord struct {
	Items   []string `msgpack:"items"`
	Support float64  `msgpack:"support"`
}

// RuleRecord is the MessagePack shape of one association rule.
type RuleRecord struct {
	Antecedent []string  `msgpack:"antecedent"`
	Consequent []string  `msgpack:"consequent"`
	Support    float64   `msgpack:"support"`
	Confidence float64   `msgpack:"confidence"`
	Extra      []float64 `msgpack:"extra,omitempty"`
}

// Read parses a transaction file. The returned weights slice is nil when
// no transaction carried an explicit weight.
func Read(r io.Reader) ([][]string, []float64, error) {
	var (
		tracts   [][]string
		weights  []float64
		explicit bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		w := 1.0
		if last := fields[len(fields)-1]; strings.HasPrefix(last, ":") {
			v, err := strconv.ParseFloat(last[1:], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: bad weight %q", core.ErrInvalidInput, line, last)
			}
			w = v
			explicit = true
			fields = fields[:len(fields)-1]
		}
		if len(fields) == 0 {
			return nil, nil, fmt.Errorf("%w: line %d: weight without items", core.ErrInvalidInput, line)
		}
		tracts = append(tracts, fields)
		weights = append(weights, w)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	if !explicit {
		weights = nil
	}

	return tracts, weights, nil
}

// WritePatterns renders itemset results as text, one per line.
func WritePatterns(w io.Writer, ps []report.Pattern) error {
	for _, p := range ps {
		if _, err := fmt.Fprintf(w, "%s : %g\n", strings.Join(p.Items, " "), p.Support); err != nil {
			return err
		}
	}

	return nil
}

// WriteRules renders rules as text, one per line.
func WriteRules(w io.Writer, rs []rules.Rule) error {
	for _, r := range rs {
		_, err := fmt.Fprintf(w, "%s -> %s : %g %g",
			strings.Join(r.Antecedent, " "), strings.Join(r.Consequent, " "), r.Support, r.Confidence)
		if err != nil {
			return err
		}
		for _, x := range r.Extra {
			if _, err = fmt.Fprintf(w, " %g", x); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WritePatternsMsgpack streams itemset results as MessagePack records.
func WritePatternsMsgpack(w io.Writer, ps []report.Pattern) error {
	enc := msgpack.NewEncoder(w)
	for _, p := range ps {
		if err := enc.Encode(PatternRecord{Items: p.Items, Support: p.Support}); err != nil {
			return err
		}
	}

	return nil
}

// WriteRulesMsgpack streams rules as MessagePack records.
func WriteRulesMsgpack(w io.Writer, rs []rules.Rule) error {
	enc := msgpack.NewEncoder(w)
	for _, r := range rs {
		rec := RuleRecord{
			Antecedent: r.Antecedent,
			Consequent: r.Consequent,
			Support:    r.Support,
			Confidence: r.Confidence,
			Extra:      r.Extra,
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	return nil
}

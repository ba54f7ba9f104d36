// Command fim mines frequent itemsets and association rules from a
// transaction file.
//
// Usage:
//
//	fim -in tracts.txt -supp -2 -target closed -algo eclat
//	fim -in tracts.txt -target rules -conf 75 -format msgpack -out rules.bin
//
// The input holds one transaction per line (whitespace-separated items,
// optional trailing ":<weight>"). Defaults come from an optional TOML
// config file (-config, default fim.toml); flags override it. The -items
// flag restricts mining to items matching any of the given comma-
// separated prefixes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/katalvlaran/fim/internal/logger"
	"github.com/katalvlaran/fim/internal/tractio"
	"github.com/katalvlaran/fim/mine"
	"github.com/katalvlaran/fim/report"
	"github.com/katalvlaran/fim/rules"
)

func main() {
	var (
		inPath     = flag.String("in", "", "transaction file (required)")
		outPath    = flag.String("out", "", "output file (default stdout)")
		configPath = flag.String("config", "fim.toml", "TOML config file")
		supp       = flag.Float64("supp", 10, "min support: negative absolute, else percent")
		conf       = flag.Float64("conf", 80, "min rule confidence in percent")
		target     = flag.String("target", "", "all|closed|maximal|generators|rules")
		algo       = flag.String("algo", "", "apriori|eclat|relim|fpgrowth")
		zmin       = flag.Int("zmin", 1, "min itemset size")
		zmax       = flag.Int("zmax", 0, "max itemset size (0 = unbounded)")
		limit      = flag.Int("limit", 0, "max number of results (0 = unlimited)")
		format     = flag.String("format", "", "text|msgpack")
		scale      = flag.String("scale", "", "absolute|relative|percent")
		items      = flag.String("items", "", "comma-separated item prefixes to keep")
		debug      = flag.Bool("d", false, "debug logging")
	)
	flag.Parse()
	logger.SetDebug(*debug)
	logg := logger.New("fim")

	if *inPath == "" {
		logg.Error("missing required -in flag")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logg.Fatal("config", "path", *configPath, "err", err)
	}

	// Flags explicitly given on the command line override the file.
	given := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { given[f.Name] = true })
	if given["supp"] {
		cfg.Mine.Supp = *supp
	}
	if given["conf"] {
		cfg.Mine.Conf = *conf
	}
	if given["zmin"] {
		cfg.Mine.ZMin = *zmin
	}
	if given["zmax"] {
		cfg.Mine.ZMax = *zmax
	}
	if given["limit"] {
		cfg.Mine.Limit = *limit
	}
	if *target != "" {
		cfg.Mine.Target = *target
	}
	if *algo != "" {
		cfg.Mine.Algo = *algo
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *scale != "" {
		cfg.Output.Scale = *scale
	}

	if err = run(cfg, *inPath, *outPath, *items, logg); err != nil {
		logg.Fatal("mining failed", "err", err)
	}
}

func run(cfg Config, inPath, outPath, items string, logg *log.Logger) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	tracts, weights, err := tractio.Read(in)
	if err != nil {
		return err
	}
	logg.Debug("loaded transactions", "count", len(tracts), "weighted", weights != nil)

	if items != "" {
		tracts = filterItems(tracts, strings.Split(items, ","))
	}

	opts, err := buildOptions(cfg, weights)
	if err != nil {
		return err
	}
	res, err := mine.Run(tracts, opts...)
	if err != nil {
		return err
	}
	logg.Info("mining done", "patterns", len(res.Patterns), "rules", len(res.Rules))

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, ferr := os.Create(outPath)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		out = f
	}

	return write(out, cfg.Output.Format, res)
}

// buildOptions translates the file/flag configuration into mine options.
func buildOptions(cfg Config, weights []float64) ([]mine.Option, error) {
	targets := map[string]mine.Target{
		"all":        mine.TargetAll,
		"closed":     mine.TargetClosed,
		"maximal":    mine.TargetMaximal,
		"generators": mine.TargetGenerators,
		"rules":      mine.TargetRules,
	}
	algos := map[string]mine.Strategy{
		"apriori":  mine.StrategyApriori,
		"eclat":    mine.StrategyEclat,
		"relim":    mine.StrategyRelim,
		"fpgrowth": mine.StrategyFPGrowth,
	}
	scales := map[string]report.Scale{
		"absolute": report.Absolute,
		"relative": report.Relative,
		"percent":  report.Percent,
	}
	tgt, ok := targets[cfg.Mine.Target]
	if !ok {
		return nil, fmt.Errorf("unknown target %q", cfg.Mine.Target)
	}
	alg, ok := algos[cfg.Mine.Algo]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Mine.Algo)
	}
	scl, ok := scales[cfg.Output.Scale]
	if !ok {
		return nil, fmt.Errorf("unknown scale %q", cfg.Output.Scale)
	}

	opts := []mine.Option{
		mine.WithTarget(tgt),
		mine.WithStrategy(alg),
		mine.WithSupport(cfg.Mine.Supp),
		mine.WithConfidence(cfg.Mine.Conf),
		mine.WithSizeRange(cfg.Mine.ZMin, cfg.Mine.ZMax),
		mine.WithLimit(cfg.Mine.Limit),
		mine.WithScale(scl),
	}
	if tgt == mine.TargetRules {
		opts = append(opts, mine.WithEvaluators(rules.Lift))
	}
	if weights != nil {
		opts = append(opts, mine.WithWeights(weights))
	}

	return opts, nil
}

// filterItems keeps only the items matching at least one of the given
// prefixes, using a patricia trie of the allowed prefixes.
func filterItems(tracts [][]string, prefixes []string) [][]string {
	trie := patricia.NewTrie()
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			trie.Insert(patricia.Prefix(p), true)
		}
	}
	allowed := func(item string) bool {
		match := false
		_ = trie.VisitPrefixes(patricia.Prefix(item), func(patricia.Prefix, patricia.Item) error {
			match = true

			return nil
		})

		return match
	}
	out := make([][]string, 0, len(tracts))
	for _, t := range tracts {
		nt := make([]string, 0, len(t))
		for _, item := range t {
			if allowed(item) {
				nt = append(nt, item)
			}
		}
		out = append(out, nt)
	}

	return out
}

func write(w io.Writer, format string, res *mine.Result) error {
	switch {
	case format == "msgpack" && res.Rules != nil:
		return tractio.WriteRulesMsgpack(w, res.Rules)
	case format == "msgpack":
		return tractio.WritePatternsMsgpack(w, res.Patterns)
	case res.Rules != nil:
		return tractio.WriteRules(w, res.Rules)
	default:
		return tractio.WritePatterns(w, res.Patterns)
	}
}

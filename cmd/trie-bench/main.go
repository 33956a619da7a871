// Command trie-bench benchmarks the prefix-tree matcher against a linear
// reference scan over a set of synthetic corpora, and cross-checks that the
// two return consistent results.
package main

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/austinv11/PrefixTrie/benchmark"
	"github.com/austinv11/PrefixTrie/corpus"
)

// suiteSpec names one corpus configuration: how to generate its entries and
// how many of them become (perturbed) queries.
type suiteSpec struct {
	name     string
	generate func(g *corpus.Generator) []string
	queries  int
}

var suiteSpecs = []suiteSpec{
	{"random-small", func(g *corpus.Generator) []string { return g.Random(500, 8, "") }, 100},
	{"random-medium", func(g *corpus.Generator) []string { return g.Random(5000, 12, "") }, 500},
	{"random-large", func(g *corpus.Generator) []string { return g.Random(25000, 15, "") }, 1500},
	{"dna", func(g *corpus.Generator) []string { return g.DNA(10000, 50) }, 1000},
	{"protein", func(g *corpus.Generator) []string { return g.Protein(8000, 30) }, 800},
	{"words", func(g *corpus.Generator) []string { return g.Words(15000) }, 1500},
	{"paths", func(g *corpus.Generator) []string { return g.Hierarchical(12000, 4) }, 1200},
	{"short-strings", func(g *corpus.Generator) []string { return g.Random(20000, 4, "") }, 2000},
	{"long-strings", func(g *corpus.Generator) []string { return g.Random(2000, 200, "") }, 200},
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "trie-bench",
		Short:         "Benchmark the prefix-tree matcher against a linear reference scan",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}
	fl := cmd.Flags()
	fl.Int("runs", 3, "timed repetitions per pass")
	fl.Int("budget", 2, "fuzzy correction budget")
	fl.Int("workers", runtime.NumCPU(), "parallel query workers")
	fl.Int64("seed", 42, "corpus generator seed")
	fl.StringSlice("suites", nil, "suites to run (default all)")
	fl.Bool("debug", false, "enable debug logging")
	if err := v.BindPFlags(fl); err != nil {
		panic(err)
	}
	v.SetEnvPrefix("TRIEBENCH")
	v.AutomaticEnv()
	return cmd
}

func run(v *viper.Viper) error {
	level := zerolog.InfoLevel
	if v.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	selected := make(map[string]bool)
	for _, name := range v.GetStringSlice("suites") {
		selected[name] = true
	}

	suite := &benchmark.Suite{
		Runs:    v.GetInt("runs"),
		Budget:  v.GetInt("budget"),
		Workers: v.GetInt("workers"),
		Log:     logger,
	}
	logger.Info().
		Int("runs", suite.Runs).
		Int("budget", suite.Budget).
		Int("workers", suite.Workers).
		Int64("seed", v.GetInt64("seed")).
		Msg("starting benchmark")

	failures := 0
	for _, spec := range suiteSpecs {
		if len(selected) > 0 && !selected[spec.name] {
			continue
		}
		// A fresh generator per suite keeps each corpus independent of
		// which suites were selected.
		g := corpus.NewGenerator(v.GetInt64("seed"))
		entries := spec.generate(g)
		queries := g.PerturbQueries(entries[:spec.queries])

		rep, err := suite.Run(spec.name, entries, queries)
		if err != nil {
			return err
		}
		failures += len(rep.Inconsistencies)
	}
	if failures > 0 {
		return errors.Newf("benchmark finished with %d consistency violations", failures)
	}
	logger.Info().Msg("benchmark finished")
	return nil
}

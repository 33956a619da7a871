// Package benchmark times the tree engine against the linear reference
// matcher over a shared corpus and validates that the two agree. Queries
// within a pass run in parallel, which doubles as a check that concurrent
// reads of the immutable index are safe.
package benchmark

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	prefixtrie "github.com/austinv11/PrefixTrie"
	"github.com/austinv11/PrefixTrie/reference"
)

// Outcome is one query's result pair, retained for consistency validation.
type Outcome struct {
	Query string
	Entry string
	Found bool
	Exact bool
}

// Timing aggregates repeated wall-clock measurements of one pass.
type Timing struct {
	Mean   time.Duration
	Stddev time.Duration
}

// Report summarises one suite run.
type Report struct {
	Name    string
	Entries int
	Queries int

	TrieExact      Timing
	ReferenceExact Timing
	TrieFuzzy      Timing
	ReferenceFuzzy Timing

	ExactSpeedup float64
	FuzzySpeedup float64

	Inconsistencies []string
}

// Suite drives repeated exact and fuzzy passes over one corpus.
type Suite struct {
	Runs    int // timed repetitions per pass, minimum 1
	Budget  int // fuzzy correction budget
	Workers int // parallel query workers, minimum 1
	Log     zerolog.Logger
}

// Run builds fresh engines over entries, times exact and fuzzy passes for
// both the tree and the reference scan, and validates the tree's results.
func (s *Suite) Run(name string, entries, queries []string) (Report, error) {
	rep := Report{Name: name, Entries: len(entries), Queries: len(queries)}

	exactTrie, err := prefixtrie.New(entries, false)
	if err != nil {
		return rep, errors.Wrapf(err, "building exact engine for %s", name)
	}
	fuzzyTrie, err := prefixtrie.New(entries, true)
	if err != nil {
		return rep, errors.Wrapf(err, "building fuzzy engine for %s", name)
	}
	ref := reference.NewMatcher(entries)

	trieExact, err := s.measure(func() ([]Outcome, error) {
		return s.triePass(exactTrie, queries, 0)
	})
	if err != nil {
		return rep, err
	}
	refExact, err := s.measure(func() ([]Outcome, error) {
		return s.referencePass(ref, queries, 0)
	})
	if err != nil {
		return rep, err
	}
	trieFuzzy, err := s.measure(func() ([]Outcome, error) {
		return s.triePass(fuzzyTrie, queries, s.Budget)
	})
	if err != nil {
		return rep, err
	}
	refFuzzy, err := s.measure(func() ([]Outcome, error) {
		return s.referencePass(ref, queries, s.Budget)
	})
	if err != nil {
		return rep, err
	}

	rep.TrieExact, rep.ReferenceExact = trieExact.timing, refExact.timing
	rep.TrieFuzzy, rep.ReferenceFuzzy = trieFuzzy.timing, refFuzzy.timing
	rep.ExactSpeedup = speedup(refExact.timing.Mean, trieExact.timing.Mean)
	rep.FuzzySpeedup = speedup(refFuzzy.timing.Mean, trieFuzzy.timing.Mean)

	rep.Inconsistencies = append(rep.Inconsistencies, Validate(entries, trieExact.outcomes, 0)...)
	rep.Inconsistencies = append(rep.Inconsistencies, Validate(entries, trieFuzzy.outcomes, s.Budget)...)
	rep.Inconsistencies = append(rep.Inconsistencies, CrossCheck(trieExact.outcomes, refExact.outcomes)...)
	rep.Inconsistencies = append(rep.Inconsistencies, CrossCheck(trieFuzzy.outcomes, refFuzzy.outcomes)...)

	s.report(rep)
	return rep, nil
}

type measured struct {
	outcomes []Outcome
	timing   Timing
}

// measure runs pass Runs times, keeping the first pass's outcomes and the
// timing distribution over all passes.
func (s *Suite) measure(pass func() ([]Outcome, error)) (measured, error) {
	runs := s.Runs
	if runs < 1 {
		runs = 1
	}
	var m measured
	samples := make([]time.Duration, 0, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		outcomes, err := pass()
		if err != nil {
			return m, err
		}
		samples = append(samples, time.Since(start))
		if m.outcomes == nil {
			m.outcomes = outcomes
		}
	}
	m.timing = summarise(samples)
	return m, nil
}

// triePass queries the engine once per query, fanned out across workers.
// Workers write disjoint slice ranges, so no locking is needed.
func (s *Suite) triePass(t *prefixtrie.Trie, queries []string, budget int) ([]Outcome, error) {
	out := make([]Outcome, len(queries))
	err := s.forEach(len(queries), func(i int) error {
		r, err := t.Search(queries[i], budget)
		if err != nil {
			return errors.Wrapf(err, "query %q", queries[i])
		}
		out[i] = Outcome{Query: queries[i], Entry: r.Entry, Found: r.Found, Exact: r.Exact}
		return nil
	})
	return out, err
}

func (s *Suite) referencePass(m *reference.Matcher, queries []string, budget int) ([]Outcome, error) {
	out := make([]Outcome, len(queries))
	err := s.forEach(len(queries), func(i int) error {
		if budget == 0 {
			entry, ok := m.SearchExact(queries[i])
			out[i] = Outcome{Query: queries[i], Entry: entry, Found: ok, Exact: ok}
			return nil
		}
		entry, dist, ok := m.Search(queries[i], budget)
		out[i] = Outcome{Query: queries[i], Entry: entry, Found: ok, Exact: ok && dist == 0}
		return nil
	})
	return out, err
}

func (s *Suite) forEach(n int, fn func(i int) error) error {
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func summarise(samples []time.Duration) Timing {
	if len(samples) == 0 {
		return Timing{}
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	mean := sum / time.Duration(len(samples))
	if len(samples) < 2 {
		return Timing{Mean: mean}
	}
	var sq float64
	for _, d := range samples {
		diff := float64(d - mean)
		sq += diff * diff
	}
	return Timing{
		Mean:   mean,
		Stddev: time.Duration(math.Sqrt(sq / float64(len(samples)-1))),
	}
}

func speedup(ref, trie time.Duration) float64 {
	if trie <= 0 {
		return math.Inf(1)
	}
	return float64(ref) / float64(trie)
}

func (s *Suite) report(rep Report) {
	ev := s.Log.Info().
		Str("suite", rep.Name).
		Int("entries", rep.Entries).
		Int("queries", rep.Queries).
		Dur("trie_exact_mean", rep.TrieExact.Mean).
		Dur("ref_exact_mean", rep.ReferenceExact.Mean).
		Dur("trie_fuzzy_mean", rep.TrieFuzzy.Mean).
		Dur("ref_fuzzy_mean", rep.ReferenceFuzzy.Mean).
		Float64("exact_speedup", rep.ExactSpeedup).
		Float64("fuzzy_speedup", rep.FuzzySpeedup)
	if len(rep.Inconsistencies) > 0 {
		s.Log.Warn().
			Str("suite", rep.Name).
			Strs("inconsistencies", rep.Inconsistencies).
			Msg("consistency validation failed")
	}
	ev.Msg("suite complete")
}

package prefixtrie

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/austinv11/PrefixTrie/corpus"
	"github.com/austinv11/PrefixTrie/reference"
)

func TestExactSearch(t *testing.T) {
	tr, err := New([]string{"cat", "car", "cart"}, true)
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		r, err := tr.Search("cat", 0)
		require.NoError(t, err)
		assert.Equal(t, Result{Entry: "cat", Found: true, Exact: true}, r)
	})

	t.Run("prefix of an entry is not a match", func(t *testing.T) {
		r, err := tr.Search("ca", 0)
		require.NoError(t, err)
		assert.False(t, r.Found)
	})

	t.Run("walk past a terminal", func(t *testing.T) {
		r, err := tr.Search("carts", 0)
		require.NoError(t, err)
		assert.False(t, r.Found)
	})

	t.Run("absent branch", func(t *testing.T) {
		r, err := tr.Search("dog", 0)
		require.NoError(t, err)
		assert.False(t, r.Found)
		assert.False(t, r.Exact)
	})
}

func TestFuzzySearch(t *testing.T) {
	tr, err := New([]string{"cat", "car", "cart"}, true)
	require.NoError(t, err)

	t.Run("substitution", func(t *testing.T) {
		r, err := tr.Search("cap", 1)
		require.NoError(t, err)
		assert.True(t, r.Found)
		assert.Equal(t, "cat", r.Entry, "cat and car tie at one correction; cat was inserted first")
		assert.False(t, r.Exact)
		assert.Equal(t, 1, r.Corrections)
	})

	t.Run("deletion from the query", func(t *testing.T) {
		r, err := tr.Search("ct", 1)
		require.NoError(t, err)
		assert.Equal(t, Result{Entry: "cat", Found: true, Corrections: 1}, r)
	})

	t.Run("insertion matches a short entry from an empty query", func(t *testing.T) {
		short, err := New([]string{"a"}, true)
		require.NoError(t, err)
		r, err := short.Search("", 1)
		require.NoError(t, err)
		assert.Equal(t, Result{Entry: "a", Found: true, Corrections: 1}, r)
	})

	t.Run("exact hit inside a fuzzy query", func(t *testing.T) {
		r, err := tr.Search("cart", 2)
		require.NoError(t, err)
		assert.True(t, r.Exact)
		assert.Equal(t, 0, r.Corrections)
		assert.Equal(t, "cart", r.Entry)
	})

	t.Run("no match within budget", func(t *testing.T) {
		r, err := tr.Search("zzzzzz", 1)
		require.NoError(t, err)
		assert.Equal(t, Result{}, r)
	})

	t.Run("budget exceeding query length still terminates", func(t *testing.T) {
		r, err := tr.Search("c", 10)
		require.NoError(t, err)
		assert.Equal(t, Result{Entry: "cat", Found: true, Corrections: 2}, r)
	})

	t.Run("query longer than any entry", func(t *testing.T) {
		r, err := tr.Search("cartwheels", 2)
		require.NoError(t, err)
		assert.False(t, r.Found)
	})
}

func TestTieBreak(t *testing.T) {
	t.Run("first inserted wins by default", func(t *testing.T) {
		tr, err := New([]string{"cad", "cab"}, true)
		require.NoError(t, err)
		r, err := tr.Search("caz", 1)
		require.NoError(t, err)
		assert.Equal(t, "cad", r.Entry)
	})

	t.Run("lexicographic option", func(t *testing.T) {
		tr, err := New([]string{"cad", "cab"}, true, WithTieBreak(TieBreakLexicographic))
		require.NoError(t, err)
		r, err := tr.Search("caz", 1)
		require.NoError(t, err)
		assert.Equal(t, "cab", r.Entry)
	})
}

func TestConfigurationErrors(t *testing.T) {
	strict, err := New([]string{"abc"}, false)
	require.NoError(t, err)

	t.Run("negative budget", func(t *testing.T) {
		_, err := strict.Search("abc", -1)
		assert.ErrorIs(t, err, ErrNegativeBudget)
	})

	t.Run("positive budget without indels is rejected", func(t *testing.T) {
		_, err := strict.Search("abx", 5)
		assert.ErrorIs(t, err, ErrIndelsDisabled)
	})

	t.Run("zero budget is legal in both modes", func(t *testing.T) {
		r, err := strict.Search("abc", 0)
		require.NoError(t, err)
		assert.True(t, r.Exact)

		permissive, err := New([]string{"abc"}, true)
		require.NoError(t, err)
		r, err = permissive.Search("abc", 0)
		require.NoError(t, err)
		assert.True(t, r.Exact)
	})
}

func TestSearchProperties(t *testing.T) {
	g := corpus.NewGenerator(1)
	entries := g.Words(300)
	queries := g.PerturbQueries(entries[:150])

	tr, err := New(entries, true)
	require.NoError(t, err)
	ref := reference.NewMatcher(entries)

	t.Run("soundness", func(t *testing.T) {
		for _, e := range entries {
			r, err := tr.Search(e, 0)
			require.NoError(t, err)
			assert.Equal(t, Result{Entry: e, Found: true, Exact: true}, r)
		}
	})

	t.Run("completeness", func(t *testing.T) {
		// Uppercase queries cannot collide with the lowercase corpus.
		for _, q := range []string{"", "Q", "WORKED", "UNTESTING"} {
			r, err := tr.Search(q, 0)
			require.NoError(t, err)
			assert.Equal(t, Result{}, r)
		}
	})

	t.Run("budget correctness", func(t *testing.T) {
		for _, q := range queries {
			for budget := 1; budget <= 3; budget++ {
				r, err := tr.Search(q, budget)
				require.NoError(t, err)
				if !r.Found {
					continue
				}
				d := reference.Distance(q, r.Entry)
				assert.LessOrEqual(t, d, budget)
				assert.Equal(t, d, r.Corrections, "query %q vs %q", q, r.Entry)
				assert.Equal(t, d == 0, r.Exact)
			}
		}
	})

	t.Run("monotonicity", func(t *testing.T) {
		for _, q := range queries {
			r1, err := tr.Search(q, 1)
			require.NoError(t, err)
			if !r1.Found {
				continue
			}
			r3, err := tr.Search(q, 3)
			require.NoError(t, err)
			assert.True(t, r3.Found)
			assert.LessOrEqual(t, r3.Corrections, r1.Corrections)
		}
	})

	t.Run("agreement with the reference scan", func(t *testing.T) {
		for _, q := range queries {
			r, err := tr.Search(q, 2)
			require.NoError(t, err)
			entry, dist, found := ref.Search(q, 2)
			assert.Equal(t, found, r.Found, "query %q", q)
			if found {
				assert.Equal(t, entry, r.Entry, "query %q", q)
				assert.Equal(t, dist, r.Corrections, "query %q", q)
			}
		}
	})

	t.Run("determinism", func(t *testing.T) {
		for _, q := range queries[:20] {
			first, err := tr.Search(q, 2)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				again, err := tr.Search(q, 2)
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}
		}
	})
}

func TestConcurrentQueries(t *testing.T) {
	g := corpus.NewGenerator(7)
	entries := g.Random(500, 10, "")
	queries := g.PerturbQueries(entries[:200])

	tr, err := New(entries, true)
	require.NoError(t, err)

	serial := make([]Result, len(queries))
	for i, q := range queries {
		serial[i], err = tr.Search(q, 2)
		require.NoError(t, err)
	}

	var eg errgroup.Group
	for w := 0; w < 8; w++ {
		eg.Go(func() error {
			for i, q := range queries {
				r, err := tr.Search(q, 2)
				if err != nil {
					return err
				}
				if r != serial[i] {
					return errors.Newf("query %d: concurrent result %+v differs from serial %+v", i, r, serial[i])
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
